package domain

import "time"

// MaxCarouselSlides is the maximum number of slides on the homepage carousel.
const MaxCarouselSlides = 7

// Slide is one carousel entry.
type Slide struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Carousel is the homepage carousel configuration. Only the most recently
// created row is served.
type Carousel struct {
	ID        string    `json:"id"`
	Slides    []Slide   `json:"slides"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
