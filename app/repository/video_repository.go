package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
)

// videoRepository implements the VideoRepository interface
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository instance
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *models.Video) error {
	return r.db.Create(video).Error
}

func (r *videoRepository) GetByID(id uint) (*models.Video, error) {
	var video models.Video
	err := r.db.Preload("Category").First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDsOrdered preserves the caller's ordering, which is the whole point
// of a manually curated section.
func (r *videoRepository) GetByIDsOrdered(ids []uint) ([]models.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var videos []models.Video
	err := r.db.Where("id IN ? AND is_published = ?", ids, true).Find(&videos).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}

	ordered := make([]models.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

func (r *videoRepository) ListPublishedByCategory(categoryID uint, limit int) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.Where("category_id = ? AND is_published = ?", categoryID, true).
		Order("published_at DESC").Limit(limit).Find(&videos).Error
	return videos, err
}

func (r *videoRepository) ListTrending(since time.Time, limit int) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.Where("is_published = ? AND published_at >= ?", true, since).
		Order("view_count DESC").Limit(limit).Find(&videos).Error
	return videos, err
}

func (r *videoRepository) ListRecent(limit int) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.Where("is_published = ?", true).
		Order("published_at DESC").Limit(limit).Find(&videos).Error
	return videos, err
}

func (r *videoRepository) Update(video *models.Video) error {
	return r.db.Save(video).Error
}

func (r *videoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Video{}, id).Error
}

func (r *videoRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Video{}).Count(&count).Error
	return count, err
}
