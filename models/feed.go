package models

import (
	"blog/db"

	"gorm.io/gorm"
)

const PostsPerPage = 10

// Page is one feed page: at most PostsPerPage posts, newest first.
type Page struct {
	Posts      []Post
	Number     int
	TotalPosts int64
	TotalPages int
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) NextPage() int {
	return p.Number + 1
}

func (p Page) PrevPage() int {
	return p.Number - 1
}

// paginate clamps the requested page number the way the front-end expects:
// anything below 1 becomes 1, anything past the end becomes the last page.
// An empty result set still has one (empty) page.
func paginate(query *gorm.DB, page int) (result Page, err error) {
	if err = query.Count(&result.TotalPosts).Error; err != nil {
		return
	}
	result.TotalPages = int((result.TotalPosts + PostsPerPage - 1) / PostsPerPage)
	if result.TotalPages < 1 {
		result.TotalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > result.TotalPages {
		page = result.TotalPages
	}
	result.Number = page
	err = query.
		Order("created_at DESC, id DESC").
		Limit(PostsPerPage).
		Offset((page - 1) * PostsPerPage).
		Preload("Author").
		Preload("Group").
		Find(&result.Posts).Error
	return
}

// GlobalFeed returns one page of all posts.
func GlobalFeed(page int) (Page, error) {
	return paginate(db.Instance.Model(&Post{}), page)
}

// GroupFeed returns one page of the group's posts.
// Unknown slug yields gorm.ErrRecordNotFound.
func GroupFeed(slug string, page int) (Group, Page, error) {
	group, err := GroupBySlug(slug)
	if err != nil {
		return Group{}, Page{}, err
	}
	result, err := paginate(
		db.Instance.Model(&Post{}).Where("group_id = ?", group.ID), page)
	return group, result, err
}

// AuthorFeed returns one page of the author's posts.
// Unknown username yields gorm.ErrRecordNotFound.
func AuthorFeed(username string, page int) (User, Page, error) {
	author, err := UserByUsername(username)
	if err != nil {
		return User{}, Page{}, err
	}
	result, err := paginate(
		db.Instance.Model(&Post{}).Where("author_id = ?", author.ID), page)
	return author, result, err
}

// FollowFeed returns one page of posts by the authors the user follows.
// The follow edges are read first, then posts are filtered by the resulting
// author-id set. An empty follow set is an empty page, not an error.
func FollowFeed(userID uint64, page int) (Page, error) {
	authorIDs, err := FollowedAuthorIDs(userID)
	if err != nil {
		return Page{}, err
	}
	if len(authorIDs) == 0 {
		return Page{Number: 1, TotalPages: 1}, nil
	}
	return paginate(
		db.Instance.Model(&Post{}).Where("author_id in ?", authorIDs), page)
}
