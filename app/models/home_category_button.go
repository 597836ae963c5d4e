package models

import "time"

// HomeCategoryButtonSlots is the fixed number of quick-access button
// placements on the home page.
const HomeCategoryButtonSlots = 2

// HomeCategoryButton occupies one of two fixed quick-access slots on the
// home page. Position is assigned at creation and never changes; the
// unique index backs up the transactional check in the repository.
type HomeCategoryButton struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Position   int       `gorm:"uniqueIndex;not null" json:"position" validate:"min=1,max=2"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HomeCategoryButton) TableName() string {
	return "home_category_buttons"
}
