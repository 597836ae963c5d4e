package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// SectionContentType selects how a home section's video list is computed.
type SectionContentType string

const (
	SectionContentVideoIDs SectionContentType = "video_ids"
	SectionContentCategory SectionContentType = "category"
	SectionContentTrending SectionContentType = "trending"
	SectionContentRecent   SectionContentType = "recent"
)

const (
	TrendingDaysDefault = 7
	TrendingDaysMax     = 365
)

var ErrUnknownContentType = errors.New("unknown section content type")

// SectionContent is the typed payload behind a section's content_data
// column. Exactly the fields of the selected type are meaningful; the
// others stay zero and are never persisted.
type SectionContent struct {
	Type       SectionContentType `json:"type"`
	VideoIDs   []uint             `json:"video_ids,omitempty"`
	CategoryID uint               `json:"category_id,omitempty"`
	Days       int                `json:"days,omitempty"`
}

// Validate checks the payload against its own type's constraints.
func (c SectionContent) Validate() error {
	switch c.Type {
	case SectionContentVideoIDs:
		if len(c.VideoIDs) == 0 {
			return errors.New("video_ids content requires at least one video")
		}
	case SectionContentCategory:
		if c.CategoryID == 0 {
			return errors.New("category content requires a category")
		}
	case SectionContentTrending:
		if c.Days < 1 || c.Days > TrendingDaysMax {
			return fmt.Errorf("trending days must be between 1 and %d", TrendingDaysMax)
		}
	case SectionContentRecent:
		// no payload
	default:
		return ErrUnknownContentType
	}
	return nil
}

// HomeSection is an ordered, curated row on the home page. The content
// payload is stored as JSON carrying only the keys of the selected type.
type HomeSection struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	Title       string             `gorm:"type:varchar(191)" json:"title" validate:"required,min=2,max=191"`
	ContentType SectionContentType `gorm:"type:varchar(32);not null" json:"content_type"`
	ContentData datatypes.JSON     `gorm:"type:json" json:"content_data"`
	Limit       int                `gorm:"column:item_limit;not null;default:10" json:"limit" validate:"min=1,max=50"`
	SortOrder   int                `gorm:"uniqueIndex;not null" json:"sort_order"`
	IsActive    bool               `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HomeSection) TableName() string {
	return "home_sections"
}

// per-type wire shapes; only the selected type's keys hit the database
type videoIDsPayload struct {
	VideoIDs []uint `json:"video_ids"`
}

type categoryPayload struct {
	CategoryID uint `json:"category_id"`
}

type trendingPayload struct {
	Days int `json:"days"`
}

// SetContent validates the payload and persists only the keys relevant to
// its type into ContentData (the write-path projection).
func (s *HomeSection) SetContent(c SectionContent) error {
	if c.Type == SectionContentTrending && c.Days == 0 {
		c.Days = TrendingDaysDefault
	}
	if err := c.Validate(); err != nil {
		return err
	}

	var (
		raw []byte
		err error
	)
	switch c.Type {
	case SectionContentVideoIDs:
		raw, err = json.Marshal(videoIDsPayload{VideoIDs: c.VideoIDs})
	case SectionContentCategory:
		raw, err = json.Marshal(categoryPayload{CategoryID: c.CategoryID})
	case SectionContentTrending:
		raw, err = json.Marshal(trendingPayload{Days: c.Days})
	case SectionContentRecent:
		raw = []byte("{}")
	}
	if err != nil {
		return err
	}

	s.ContentType = c.Type
	s.ContentData = datatypes.JSON(raw)
	return nil
}

// Content projects ContentData back into the typed payload (the read-path
// projection). SetContent(Content()) leaves the record unchanged.
func (s *HomeSection) Content() (SectionContent, error) {
	c := SectionContent{Type: s.ContentType}
	switch s.ContentType {
	case SectionContentVideoIDs:
		var p videoIDsPayload
		if err := json.Unmarshal(s.ContentData, &p); err != nil {
			return c, err
		}
		c.VideoIDs = p.VideoIDs
	case SectionContentCategory:
		var p categoryPayload
		if err := json.Unmarshal(s.ContentData, &p); err != nil {
			return c, err
		}
		c.CategoryID = p.CategoryID
	case SectionContentTrending:
		var p trendingPayload
		if err := json.Unmarshal(s.ContentData, &p); err != nil {
			return c, err
		}
		c.Days = p.Days
	case SectionContentRecent:
		// nothing to project
	default:
		return c, ErrUnknownContentType
	}
	return c, nil
}
