package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetContentStoresOnlyRelevantKeys(t *testing.T) {
	var s HomeSection

	err := s.SetContent(SectionContent{Type: SectionContentVideoIDs, VideoIDs: []uint{3, 1, 2}, CategoryID: 99, Days: 42})
	require.NoError(t, err)

	assert.Equal(t, SectionContentVideoIDs, s.ContentType)
	assert.JSONEq(t, `{"video_ids":[3,1,2]}`, string(s.ContentData))
}

func TestSetContentRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		content SectionContent
	}{
		{"video ids", SectionContent{Type: SectionContentVideoIDs, VideoIDs: []uint{5, 2, 9}}},
		{"category", SectionContent{Type: SectionContentCategory, CategoryID: 7}},
		{"trending", SectionContent{Type: SectionContentTrending, Days: 30}},
		{"recent", SectionContent{Type: SectionContentRecent}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s HomeSection
			require.NoError(t, s.SetContent(tc.content))

			got, err := s.Content()
			require.NoError(t, err)
			assert.Equal(t, tc.content, got)
		})
	}
}

func TestSetContentDefaultsTrendingDays(t *testing.T) {
	var s HomeSection
	require.NoError(t, s.SetContent(SectionContent{Type: SectionContentTrending}))

	got, err := s.Content()
	require.NoError(t, err)
	assert.Equal(t, TrendingDaysDefault, got.Days)
}

func TestSetContentRejectsInvalidPayloads(t *testing.T) {
	cases := []struct {
		name    string
		content SectionContent
	}{
		{"unknown type", SectionContent{Type: "playlist"}},
		{"empty video ids", SectionContent{Type: SectionContentVideoIDs}},
		{"missing category", SectionContent{Type: SectionContentCategory}},
		{"trending days too large", SectionContent{Type: SectionContentTrending, Days: TrendingDaysMax + 1}},
		{"trending days negative", SectionContent{Type: SectionContentTrending, Days: -3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s HomeSection
			assert.Error(t, s.SetContent(tc.content))
		})
	}
}

func TestSetContentRecentStoresEmptyObject(t *testing.T) {
	var s HomeSection
	require.NoError(t, s.SetContent(SectionContent{Type: SectionContentRecent}))
	assert.Equal(t, "{}", string(s.ContentData))
}

func TestContentUnknownStoredType(t *testing.T) {
	s := HomeSection{ContentType: "playlist", ContentData: []byte(`{}`)}
	_, err := s.Content()
	assert.ErrorIs(t, err, ErrUnknownContentType)
}
