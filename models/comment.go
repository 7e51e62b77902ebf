package models

import (
	"blog/db"
	"errors"
	"strings"
	"time"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index"`
	Text      string `gorm:"type:text"`
	AuthorID  uint64
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    uint64 `gorm:"index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

var ErrEmptyComment = errors.New("comment text is empty")

func (c Comment) CreatedTime() time.Time {
	return time.Unix(c.CreatedAt, 0)
}

// AddComment appends a comment to the post, newest-first on read.
func AddComment(post *Post, author *User, text string) (Comment, error) {
	if strings.TrimSpace(text) == "" {
		return Comment{}, ErrEmptyComment
	}
	comment := Comment{
		Text:     text,
		AuthorID: author.ID,
		PostID:   post.ID,
	}
	return comment, db.Instance.Create(&comment).Error
}

func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return
}
