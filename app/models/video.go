package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Video is the reference entity home sections and sliders point at.
// Transcoding and playback are handled elsewhere; this record carries
// only what the back-office and the home resolver need.
type Video struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(255)" json:"title" validate:"required,min=2,max=255"`
	CategoryID  uint           `gorm:"index" json:"category_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	ViewCount   int64          `gorm:"default:0" json:"view_count"`
	PublishedAt *time.Time     `gorm:"type:timestamp;default:null;index" json:"published_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Video) TableName() string {
	return "videos"
}

func (v *Video) Validate() error {
	return validator.New().Struct(v)
}
