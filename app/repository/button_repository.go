package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flixhive/FlixHive/app/models"
)

// buttonRepository implements the ButtonRepository interface
type buttonRepository struct {
	db *gorm.DB
}

// NewButtonRepository creates a new home category button repository instance
func NewButtonRepository(db *gorm.DB) ButtonRepository {
	return &buttonRepository{db: db}
}

// Create runs the slot checks and the insert in one transaction. The
// unique index on position is the backstop should two creates still race.
func (r *buttonRepository) Create(button *models.HomeCategoryButton) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.HomeCategoryButton{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= models.HomeCategoryButtonSlots {
			return ErrSlotsFull
		}

		var occupied int64
		if err := tx.Model(&models.HomeCategoryButton{}).
			Where("position = ?", button.Position).
			Count(&occupied).Error; err != nil {
			return err
		}
		if occupied > 0 {
			return ErrPositionTaken
		}

		return tx.Create(button).Error
	})
}

func (r *buttonRepository) GetByID(id uint) (*models.HomeCategoryButton, error) {
	var button models.HomeCategoryButton
	err := r.db.Preload("Category").First(&button, id).Error
	if err != nil {
		return nil, err
	}
	return &button, nil
}

func (r *buttonRepository) GetAll() ([]models.HomeCategoryButton, error) {
	var buttons []models.HomeCategoryButton
	err := r.db.Preload("Category").Order("position ASC").Find(&buttons).Error
	return buttons, err
}

func (r *buttonRepository) GetActive() ([]models.HomeCategoryButton, error) {
	var buttons []models.HomeCategoryButton
	err := r.db.Preload("Category").Where("is_active = ?", true).
		Order("position ASC").Find(&buttons).Error
	return buttons, err
}

// Update allows category and activity edits but keeps the slot fixed for
// the lifetime of the record.
func (r *buttonRepository) Update(button *models.HomeCategoryButton) error {
	var stored models.HomeCategoryButton
	if err := r.db.First(&stored, button.ID).Error; err != nil {
		return err
	}
	if stored.Position != button.Position {
		return ErrPositionImmutable
	}
	return r.db.Save(button).Error
}

func (r *buttonRepository) Delete(id uint) error {
	return r.db.Delete(&models.HomeCategoryButton{}, id).Error
}

func (r *buttonRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.HomeCategoryButton{}).Count(&count).Error
	return count, err
}
