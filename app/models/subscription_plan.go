package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SubscriptionPlan is a purchasable plan. Administrative edits are allowed
// at any time; subscriptions keep their own expiry and are not recomputed
// when a plan changes.
type SubscriptionPlan struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;type:varchar(191)" json:"name" validate:"required,min=2,max=191"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price" validate:"gte=0"`
	DurationDays int       `gorm:"not null" json:"duration_days" validate:"gte=1"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

func (p *SubscriptionPlan) Validate() error {
	return validator.New().Struct(p)
}
