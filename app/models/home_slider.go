package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// HomeSlider is a hero banner on the home page. ImagePath stays empty
// until the uploaded image has been finalized; SortOrder duplicates are
// allowed, smaller values show first.
type HomeSlider struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(191)" json:"title" validate:"required,min=2,max=191"`
	Subtitle   string    `gorm:"type:varchar(255)" json:"subtitle" validate:"max=255"`
	ButtonText string    `gorm:"type:varchar(100)" json:"button_text" validate:"max=100"`
	ButtonLink string    `gorm:"type:varchar(255)" json:"button_link" validate:"omitempty,url,max=255"`
	ImagePath  string    `gorm:"type:varchar(255);default:null" json:"image_path"`
	VideoID    *uint     `gorm:"index" json:"video_id"`
	Video      *Video    `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	SortOrder  int       `gorm:"not null;default:0;index" json:"sort_order"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HomeSlider) TableName() string {
	return "home_sliders"
}

func (s *HomeSlider) Validate() error {
	return validator.New().Struct(s)
}
