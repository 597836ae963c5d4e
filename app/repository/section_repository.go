package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flixhive/FlixHive/app/models"
)

// sectionRepository implements the SectionRepository interface
type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new home section repository instance
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) Create(section *models.HomeSection) error {
	return r.db.Create(section).Error
}

func (r *sectionRepository) GetByID(id uint) (*models.HomeSection, error) {
	var section models.HomeSection
	err := r.db.First(&section, id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) GetAllOrdered() ([]models.HomeSection, error) {
	var sections []models.HomeSection
	err := r.db.Order("sort_order ASC").Find(&sections).Error
	return sections, err
}

func (r *sectionRepository) GetActiveOrdered() ([]models.HomeSection, error) {
	var sections []models.HomeSection
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&sections).Error
	return sections, err
}

func (r *sectionRepository) Update(section *models.HomeSection) error {
	return r.db.Save(section).Error
}

func (r *sectionRepository) Delete(id uint) error {
	return r.db.Delete(&models.HomeSection{}, id).Error
}

// MoveUp swaps sort_order with the closest predecessor. Locking both rows
// keeps concurrent moves from producing duplicate ranks.
func (r *sectionRepository) MoveUp(id uint) error {
	return r.swapWithNeighbor(id, true)
}

// MoveDown swaps sort_order with the closest successor; no successor means
// the section is already last and the call is a no-op.
func (r *sectionRepository) MoveDown(id uint) error {
	return r.swapWithNeighbor(id, false)
}

func (r *sectionRepository) swapWithNeighbor(id uint, up bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current models.HomeSection
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, id).Error; err != nil {
			return err
		}

		neighborQuery := tx.Clauses(clause.Locking{Strength: "UPDATE"})
		if up {
			neighborQuery = neighborQuery.Where("sort_order < ?", current.SortOrder).
				Order("sort_order DESC")
		} else {
			neighborQuery = neighborQuery.Where("sort_order > ?", current.SortOrder).
				Order("sort_order ASC")
		}

		var neighbor models.HomeSection
		err := neighborQuery.First(&neighbor).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // already at the edge
		}
		if err != nil {
			return err
		}

		// Three-step swap keeps the unique index on sort_order satisfied
		// at every point inside the transaction. The current row parks one
		// below the table minimum, a rank no live row can hold.
		var minOrder int
		if err := tx.Model(&models.HomeSection{}).
			Select("COALESCE(MIN(sort_order), 0)").Row().Scan(&minOrder); err != nil {
			return err
		}

		currentOrder, neighborOrder := current.SortOrder, neighbor.SortOrder
		if err := tx.Model(&models.HomeSection{}).Where("id = ?", current.ID).
			Update("sort_order", minOrder-1).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.HomeSection{}).Where("id = ?", neighbor.ID).
			Update("sort_order", currentOrder).Error; err != nil {
			return err
		}
		return tx.Model(&models.HomeSection{}).Where("id = ?", current.ID).
			Update("sort_order", neighborOrder).Error
	})
}

// NextSortOrder returns one past the current maximum rank.
func (r *sectionRepository) NextSortOrder() (int, error) {
	var max int
	err := r.db.Model(&models.HomeSection{}).
		Select("COALESCE(MAX(sort_order), 0)").Row().Scan(&max)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
