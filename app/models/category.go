package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Category groups videos for browsing and for category-driven home sections.
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(191)" json:"title" validate:"required,min=2,max=191"`
	Slug      string         `gorm:"uniqueIndex;type:varchar(191)" json:"slug" validate:"required,min=2,max=191"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
