package homecontent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixhive/FlixHive/app/models"
)

type fakeVideoRepo struct {
	byIDs      []models.Video
	byCategory []models.Video
	trending   []models.Video
	recent     []models.Video

	gotIDs      []uint
	gotCategory uint
	gotSince    time.Time
	gotLimit    int
}

func (f *fakeVideoRepo) Create(*models.Video) error          { return nil }
func (f *fakeVideoRepo) GetByID(uint) (*models.Video, error) { return nil, nil }
func (f *fakeVideoRepo) Update(*models.Video) error          { return nil }
func (f *fakeVideoRepo) Delete(uint) error                   { return nil }
func (f *fakeVideoRepo) Count() (int64, error)               { return 0, nil }

func (f *fakeVideoRepo) GetByIDsOrdered(ids []uint) ([]models.Video, error) {
	f.gotIDs = ids
	return f.byIDs, nil
}

func (f *fakeVideoRepo) ListPublishedByCategory(categoryID uint, limit int) ([]models.Video, error) {
	f.gotCategory = categoryID
	f.gotLimit = limit
	return f.byCategory, nil
}

func (f *fakeVideoRepo) ListTrending(since time.Time, limit int) ([]models.Video, error) {
	f.gotSince = since
	f.gotLimit = limit
	return f.trending, nil
}

func (f *fakeVideoRepo) ListRecent(limit int) ([]models.Video, error) {
	f.gotLimit = limit
	return f.recent, nil
}

func videosWithIDs(ids ...uint) []models.Video {
	out := make([]models.Video, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Video{ID: id})
	}
	return out
}

func sectionWith(t *testing.T, content models.SectionContent, limit int) *models.HomeSection {
	t.Helper()
	s := &models.HomeSection{Title: "Row", Limit: limit, IsActive: true}
	require.NoError(t, s.SetContent(content))
	return s
}

func TestResolveInactiveSection(t *testing.T) {
	repo := &fakeVideoRepo{byIDs: videosWithIDs(1)}
	r := NewResolver(repo)

	section := sectionWith(t, models.SectionContent{Type: models.SectionContentVideoIDs, VideoIDs: []uint{1}}, 10)
	section.IsActive = false

	videos, err := r.Resolve(section)
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.Nil(t, repo.gotIDs)
}

func TestResolveVideoIDsKeepsOrderAndCapsAtLimit(t *testing.T) {
	repo := &fakeVideoRepo{byIDs: videosWithIDs(9, 4, 7)}
	r := NewResolver(repo)

	section := sectionWith(t, models.SectionContent{Type: models.SectionContentVideoIDs, VideoIDs: []uint{9, 4, 7}}, 2)

	videos, err := r.Resolve(section)
	require.NoError(t, err)
	assert.Equal(t, []uint{9, 4, 7}, repo.gotIDs)
	require.Len(t, videos, 2)
	assert.Equal(t, uint(9), videos[0].ID)
	assert.Equal(t, uint(4), videos[1].ID)
}

func TestResolveCategory(t *testing.T) {
	repo := &fakeVideoRepo{byCategory: videosWithIDs(2, 3)}
	r := NewResolver(repo)

	section := sectionWith(t, models.SectionContent{Type: models.SectionContentCategory, CategoryID: 6}, 15)

	videos, err := r.Resolve(section)
	require.NoError(t, err)
	assert.Equal(t, uint(6), repo.gotCategory)
	assert.Equal(t, 15, repo.gotLimit)
	assert.Len(t, videos, 2)
}

func TestResolveTrendingWindow(t *testing.T) {
	repo := &fakeVideoRepo{trending: videosWithIDs(8)}
	r := NewResolver(repo)
	now := time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	section := sectionWith(t, models.SectionContent{Type: models.SectionContentTrending, Days: 14}, 5)

	_, err := r.Resolve(section)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -14), repo.gotSince)
	assert.Equal(t, 5, repo.gotLimit)
}

func TestResolveRecent(t *testing.T) {
	repo := &fakeVideoRepo{recent: videosWithIDs(1, 2, 3)}
	r := NewResolver(repo)

	section := sectionWith(t, models.SectionContent{Type: models.SectionContentRecent}, 3)

	videos, err := r.Resolve(section)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.gotLimit)
	assert.Len(t, videos, 3)
}

func TestResolveUnknownStoredType(t *testing.T) {
	r := NewResolver(&fakeVideoRepo{})
	section := &models.HomeSection{ContentType: "playlist", ContentData: []byte(`{}`), Limit: 5, IsActive: true}

	_, err := r.Resolve(section)
	assert.ErrorIs(t, err, models.ErrUnknownContentType)
}
