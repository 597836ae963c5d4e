package homecontent

import (
	"time"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/app/repository"
)

// Resolver turns a home section's content selector into the ordered video
// list the storefront renders. Now is swappable for tests.
type Resolver struct {
	videos repository.VideoRepository
	now    func() time.Time
}

// NewResolver creates a resolver over the given video repository.
func NewResolver(videos repository.VideoRepository) *Resolver {
	return &Resolver{videos: videos, now: time.Now}
}

// Resolve returns the videos for a section, capped at its limit. Inactive
// sections resolve to nothing.
func (r *Resolver) Resolve(section *models.HomeSection) ([]models.Video, error) {
	if !section.IsActive {
		return nil, nil
	}

	content, err := section.Content()
	if err != nil {
		return nil, err
	}

	limit := section.Limit
	if limit < 1 {
		limit = 1
	}

	switch content.Type {
	case models.SectionContentVideoIDs:
		videos, err := r.videos.GetByIDsOrdered(content.VideoIDs)
		if err != nil {
			return nil, err
		}
		if len(videos) > limit {
			videos = videos[:limit]
		}
		return videos, nil
	case models.SectionContentCategory:
		return r.videos.ListPublishedByCategory(content.CategoryID, limit)
	case models.SectionContentTrending:
		days := content.Days
		if days < 1 {
			days = models.TrendingDaysDefault
		}
		since := r.now().AddDate(0, 0, -days)
		return r.videos.ListTrending(since, limit)
	case models.SectionContentRecent:
		return r.videos.ListRecent(limit)
	default:
		return nil, models.ErrUnknownContentType
	}
}
