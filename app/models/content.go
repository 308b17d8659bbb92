package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentEntity is implemented by every single-table CMS entity that exposes
// the uniform list/create/update/delete/toggle surface.
type ContentEntity interface {
	GetID() string
	EnsureID()
	Active() bool
	SetActive(active bool)
}

type Banner struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Subtitle  string    `gorm:"size:255" json:"subtitle"`
	Link      string    `gorm:"size:255" json:"link"`
	Image     *string   `gorm:"size:255" json:"image,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder int       `gorm:"not null;default:0;index" json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type HeroSection struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Heading    string    `gorm:"size:150;not null" json:"heading"`
	Subheading string    `gorm:"size:255" json:"subheading"`
	ButtonText string    `gorm:"size:50" json:"buttonText"`
	ButtonLink string    `gorm:"size:255" json:"buttonLink"`
	Image      *string   `gorm:"size:255" json:"image,omitempty"`
	IsActive   bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder  int       `gorm:"not null;default:0;index" json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Service struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        *string   `gorm:"size:255" json:"icon,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder   int       `gorm:"not null;default:0;index" json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Testimonial struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Location  string    `gorm:"size:100" json:"location"`
	Quote     string    `gorm:"type:text;not null" json:"quote"`
	Avatar    *string   `gorm:"size:255" json:"avatar,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder int       `gorm:"not null;default:0;index" json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Video struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	VideoURL  *string   `gorm:"size:255" json:"videoUrl,omitempty"`
	Thumbnail *string   `gorm:"size:255" json:"thumbnail,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder int       `gorm:"not null;default:0;index" json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Banner) GetID() string    { return b.ID }
func (b *Banner) EnsureID()        { ensureID(&b.ID) }
func (b *Banner) Active() bool     { return b.IsActive }
func (b *Banner) SetActive(a bool) { b.IsActive = a }

func (h *HeroSection) GetID() string    { return h.ID }
func (h *HeroSection) EnsureID()        { ensureID(&h.ID) }
func (h *HeroSection) Active() bool     { return h.IsActive }
func (h *HeroSection) SetActive(a bool) { h.IsActive = a }

func (s *Service) GetID() string    { return s.ID }
func (s *Service) EnsureID()        { ensureID(&s.ID) }
func (s *Service) Active() bool     { return s.IsActive }
func (s *Service) SetActive(a bool) { s.IsActive = a }

func (t *Testimonial) GetID() string    { return t.ID }
func (t *Testimonial) EnsureID()        { ensureID(&t.ID) }
func (t *Testimonial) Active() bool     { return t.IsActive }
func (t *Testimonial) SetActive(a bool) { t.IsActive = a }

func (v *Video) GetID() string    { return v.ID }
func (v *Video) EnsureID()        { ensureID(&v.ID) }
func (v *Video) Active() bool     { return v.IsActive }
func (v *Video) SetActive(a bool) { v.IsActive = a }

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}
