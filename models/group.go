package models

import "blog/db"

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Slug        string `gorm:"type:varchar(200);index:uniq_slug,unique"`
	Title       string `gorm:"type:varchar(200)"`
	Description string `gorm:"type:text"`
}

// GroupBySlug returns gorm.ErrRecordNotFound for an unknown slug.
func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title").Find(&groups).Error
	return
}
