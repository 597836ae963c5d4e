package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
)

var (
	// ErrPositionTaken is returned when a home button slot is already occupied.
	ErrPositionTaken = errors.New("position already occupied")
	// ErrSlotsFull is returned when both home button slots exist.
	ErrSlotsFull = errors.New("all button slots are occupied")
	// ErrPositionImmutable is returned when an update tries to change a button's slot.
	ErrPositionImmutable = errors.New("position cannot be changed after creation")
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastActivity(id uint, at time.Time) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	Search(query string) ([]models.User, error)
}

// PlanRepository defines the interface for subscription plan operations
type PlanRepository interface {
	Create(plan *models.SubscriptionPlan) error
	GetByID(id uint) (*models.SubscriptionPlan, error)
	GetAll() ([]models.SubscriptionPlan, error)
	GetActive() ([]models.SubscriptionPlan, error)
	Update(plan *models.SubscriptionPlan) error
	Delete(id uint) error
}

// SubscriptionRepository defines the interface for user subscription operations
type SubscriptionRepository interface {
	Create(sub *models.UserSubscription) error
	GetByID(id uint) (*models.UserSubscription, error)
	// FindActiveByUser returns the user's active subscription with the
	// latest expiry, or nil when none exists.
	FindActiveByUser(userID uint) (*models.UserSubscription, error)
	ListByUser(userID uint) ([]models.UserSubscription, error)
	List(offset, limit int) ([]models.UserSubscription, error)
	Count() (int64, error)
	MarkExpired(id uint) error
	MarkCanceled(id uint) error
}

// CategoryRepository defines the interface for category reference data
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
}

// VideoRepository defines the interface for video reference data and the
// lookups the home content resolver needs.
type VideoRepository interface {
	Create(video *models.Video) error
	GetByID(id uint) (*models.Video, error)
	// GetByIDsOrdered returns published videos in exactly the order of ids,
	// skipping ids that do not resolve.
	GetByIDsOrdered(ids []uint) ([]models.Video, error)
	ListPublishedByCategory(categoryID uint, limit int) ([]models.Video, error)
	ListTrending(since time.Time, limit int) ([]models.Video, error)
	ListRecent(limit int) ([]models.Video, error)
	Update(video *models.Video) error
	Delete(id uint) error
	Count() (int64, error)
}

// SectionRepository defines the interface for home section operations
type SectionRepository interface {
	Create(section *models.HomeSection) error
	GetByID(id uint) (*models.HomeSection, error)
	GetAllOrdered() ([]models.HomeSection, error)
	GetActiveOrdered() ([]models.HomeSection, error)
	Update(section *models.HomeSection) error
	Delete(id uint) error
	// MoveUp swaps the section's rank with its predecessor; a section that
	// is already first is left untouched. MoveDown mirrors it at the tail.
	MoveUp(id uint) error
	MoveDown(id uint) error
	NextSortOrder() (int, error)
}

// SliderRepository defines the interface for home slider operations
type SliderRepository interface {
	Create(slider *models.HomeSlider) error
	// CreateWithNextOrder assigns max(sort_order)+1 inside the insert
	// transaction before creating the slider.
	CreateWithNextOrder(slider *models.HomeSlider) error
	GetByID(id uint) (*models.HomeSlider, error)
	GetAllOrdered() ([]models.HomeSlider, error)
	GetActiveOrdered() ([]models.HomeSlider, error)
	Update(slider *models.HomeSlider) error
	UpdateImagePath(id uint, path string) error
	Delete(id uint) error
}

// ButtonRepository defines the interface for home category button operations
type ButtonRepository interface {
	// Create enforces the two-slot limit and position uniqueness inside a
	// single transaction.
	Create(button *models.HomeCategoryButton) error
	GetByID(id uint) (*models.HomeCategoryButton, error)
	GetAll() ([]models.HomeCategoryButton, error)
	GetActive() ([]models.HomeCategoryButton, error)
	// Update rejects position changes with ErrPositionImmutable.
	Update(button *models.HomeCategoryButton) error
	Delete(id uint) error
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Plan         PlanRepository
	Subscription SubscriptionRepository
	Category     CategoryRepository
	Video        VideoRepository
	Section      SectionRepository
	Slider       SliderRepository
	Button       ButtonRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Plan:         NewPlanRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Category:     NewCategoryRepository(db),
		Video:        NewVideoRepository(db),
		Section:      NewSectionRepository(db),
		Slider:       NewSliderRepository(db),
		Button:       NewButtonRepository(db),
	}
}
