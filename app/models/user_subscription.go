package models

import "time"

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusExpired  = "expired"
	SubscriptionStatusCanceled = "canceled"
)

// UserSubscription ties a user to a plan for a period of time. Manually
// granted subscriptions carry no plan or payment linkage.
type UserSubscription struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	UserID     uint              `gorm:"not null;index:idx_user_subscriptions_user_status,priority:1" json:"user_id"`
	User       *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PlanID     *uint             `gorm:"index" json:"plan_id"`
	Plan       *SubscriptionPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Status     string            `gorm:"type:varchar(32);not null;default:'active';index:idx_user_subscriptions_user_status,priority:2" json:"status"`
	PaymentRef string            `gorm:"type:varchar(191);default:null" json:"payment_ref,omitempty"`
	ExpiresAt  time.Time         `gorm:"type:timestamp;not null;index" json:"expires_at"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}

// IsManual reports whether the subscription was granted by an admin
// rather than bought through a payment flow.
func (s *UserSubscription) IsManual() bool {
	return s.PlanID == nil && s.PaymentRef == ""
}

// IsExpired reports whether the subscription has run out at the given time.
func (s *UserSubscription) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
