// Package gallery holds the paging state of a listing's photo strip.
package gallery

import "sync"

// Carousel keeps a single scroll offset over an ordered photo sequence.
// Next and Previous move by exactly one viewport width and stop at the ends.
// One Carousel belongs to one open detail view.
type Carousel struct {
	mu     sync.Mutex
	photos []string
	width  int
	offset int
}

// New opens a carousel positioned on the first photo.
func New(photos []string, viewportWidth int) *Carousel {
	c := &Carousel{width: normalizeWidth(viewportWidth)}
	c.Open(photos)
	return c
}

// Open replaces the photo sequence and resets to the first photo.
func (c *Carousel) Open(photos []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.photos = append([]string(nil), photos...)
	c.offset = 0
}

// ShowControls reports whether prev/next controls are shown. It depends only
// on the photo count, never on the current offset.
func (c *Carousel) ShowControls() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.photos) > 1
}

func (c *Carousel) Next() {
	c.scrollBy(1)
}

func (c *Carousel) Previous() {
	c.scrollBy(-1)
}

func (c *Carousel) scrollBy(direction int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = clamp(c.offset+direction*c.width, 0, c.maxOffset())
}

// SetViewportWidth changes the page width and keeps the current photo in view.
func (c *Carousel) SetViewportWidth(width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.index()
	c.width = normalizeWidth(width)
	c.offset = idx * c.width
}

func (c *Carousel) Offset() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

// Index is the photo currently aligned with the viewport.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index()
}

// Current returns the photo in view, or "" when there are no photos.
func (c *Carousel) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.photos) == 0 {
		return ""
	}
	return c.photos[c.index()]
}

func (c *Carousel) Photos() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.photos...)
}

func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.photos)
}

func (c *Carousel) index() int {
	if len(c.photos) == 0 {
		return 0
	}
	return clamp((c.offset+c.width/2)/c.width, 0, len(c.photos)-1)
}

func (c *Carousel) maxOffset() int {
	if len(c.photos) <= 1 {
		return 0
	}
	return (len(c.photos) - 1) * c.width
}

func normalizeWidth(w int) int {
	if w <= 0 {
		return 1
	}
	return w
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
