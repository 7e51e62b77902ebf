package models

import (
	"blog/db"
	"errors"

	"gorm.io/gorm"
)

// Follow is a directed edge meaning "User follows Author".
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	AuthorID  uint64 `gorm:"index:uniq_follow,priority:1,unique"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint64 `gorm:"index:uniq_follow,priority:2,unique;index"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor creates the follow edge unless it already exists.
// Following yourself is silently skipped. A duplicate-key error from a
// concurrent request means the edge is already there, which is the outcome
// the caller asked for.
func FollowAuthor(user *User, targetUsername string) error {
	author, err := UserByUsername(targetUsername)
	if err != nil {
		return err
	}
	if author.ID == user.ID {
		return nil
	}
	follow := Follow{}
	err = db.Instance.
		Where(Follow{AuthorID: author.ID, UserID: user.ID}).
		FirstOrCreate(&follow).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// UnfollowAuthor deletes the follow edge; a missing edge is a no-op.
func UnfollowAuthor(user *User, targetUsername string) error {
	author, err := UserByUsername(targetUsername)
	if err != nil {
		return err
	}
	return db.Instance.
		Where("author_id = ? and user_id = ?", author.ID, user.ID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("author_id = ? and user_id = ?", authorID, userID).
		Count(&count)
	return count > 0
}

// FollowedAuthorIDs returns the ids of all authors the user follows.
func FollowedAuthorIDs(userID uint64) (ids []uint64, err error) {
	err = db.Instance.Model(&Follow{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &ids).Error
	return
}
