package models

import (
	"blog/db"
	"time"
)

type Post struct {
	ID        uint64  `gorm:"primaryKey"`
	CreatedAt int64   `gorm:"index"`
	UpdatedAt int64
	Text      string  `gorm:"type:text"`
	AuthorID  uint64  `gorm:"index"`
	Author    User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64 `gorm:"index"`
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	ImagePath string  `gorm:"type:varchar(300)"` // Under the posts/ media prefix
	ThumbPath string  `gorm:"type:varchar(300)"`
}

func (p Post) CreatedTime() time.Time {
	return time.Unix(p.CreatedAt, 0)
}

// PostByID returns gorm.ErrRecordNotFound for an unknown id.
func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}
