package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new user subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(sub *models.UserSubscription) error {
	return r.db.Create(sub).Error
}

func (r *subscriptionRepository) GetByID(id uint) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	err := r.db.Preload("User").Preload("Plan").First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// FindActiveByUser picks the active row with the latest expiry. The schema
// does not forbid multiple active rows, so the pick has to be deterministic.
func (r *subscriptionRepository) FindActiveByUser(userID uint) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	err := r.db.Where("user_id = ? AND status = ?", userID, models.SubscriptionStatusActive).
		Order("expires_at DESC").First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) ListByUser(userID uint) ([]models.UserSubscription, error) {
	var subs []models.UserSubscription
	err := r.db.Preload("Plan").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) List(offset, limit int) ([]models.UserSubscription, error) {
	var subs []models.UserSubscription
	err := r.db.Preload("User").Preload("Plan").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.UserSubscription{}).Count(&count).Error
	return count, err
}

// MarkExpired flips the status and nothing else.
func (r *subscriptionRepository) MarkExpired(id uint) error {
	return r.db.Model(&models.UserSubscription{}).Where("id = ?", id).
		Update("status", models.SubscriptionStatusExpired).Error
}

func (r *subscriptionRepository) MarkCanceled(id uint) error {
	return r.db.Model(&models.UserSubscription{}).Where("id = ?", id).
		Update("status", models.SubscriptionStatusCanceled).Error
}
