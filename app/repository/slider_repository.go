package repository

import (
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
)

// sliderRepository implements the SliderRepository interface
type sliderRepository struct {
	db *gorm.DB
}

// NewSliderRepository creates a new home slider repository instance
func NewSliderRepository(db *gorm.DB) SliderRepository {
	return &sliderRepository{db: db}
}

func (r *sliderRepository) Create(slider *models.HomeSlider) error {
	return r.db.Create(slider).Error
}

// CreateWithNextOrder computes max(sort_order)+1 and inserts in one
// transaction so two concurrent creates cannot both claim the same rank
// from a stale read.
func (r *sliderRepository) CreateWithNextOrder(slider *models.HomeSlider) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var max int
		if err := tx.Model(&models.HomeSlider{}).
			Select("COALESCE(MAX(sort_order), 0)").Row().Scan(&max); err != nil {
			return err
		}
		slider.SortOrder = max + 1
		return tx.Create(slider).Error
	})
}

func (r *sliderRepository) GetByID(id uint) (*models.HomeSlider, error) {
	var slider models.HomeSlider
	err := r.db.Preload("Video").First(&slider, id).Error
	if err != nil {
		return nil, err
	}
	return &slider, nil
}

func (r *sliderRepository) GetAllOrdered() ([]models.HomeSlider, error) {
	var sliders []models.HomeSlider
	err := r.db.Order("sort_order ASC, id ASC").Find(&sliders).Error
	return sliders, err
}

func (r *sliderRepository) GetActiveOrdered() ([]models.HomeSlider, error) {
	var sliders []models.HomeSlider
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC, id ASC").Find(&sliders).Error
	return sliders, err
}

func (r *sliderRepository) Update(slider *models.HomeSlider) error {
	return r.db.Save(slider).Error
}

// UpdateImagePath touches only the image column; the async processor calls
// this after finalization.
func (r *sliderRepository) UpdateImagePath(id uint, path string) error {
	return r.db.Model(&models.HomeSlider{}).Where("id = ?", id).
		Update("image_path", path).Error
}

func (r *sliderRepository) Delete(id uint) error {
	return r.db.Delete(&models.HomeSlider{}, id).Error
}
