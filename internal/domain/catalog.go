package domain

import (
	"fmt"
	"slices"
)

// Expected catalog dimensions.
const (
	SignCount = 12
	SongCount = 30
)

// Catalog is the read-only set of advice profiles, signs and songs.
// It is safe for concurrent use; nothing in it is written after construction.
type Catalog struct {
	profiles map[string]Profile
	signs    []Sign
	songs    []string
	fallback string
}

// NewCatalog returns the built-in catalog with the given fallback sign.
// An empty fallback selects FallbackSign.
func NewCatalog(fallback string) (*Catalog, error) {
	if fallback == "" {
		fallback = FallbackSign
	}

	c := &Catalog{
		profiles: profiles,
		signs:    signs,
		songs:    songs,
		fallback: fallback,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that every sign has a complete profile and a date range,
// that the playlist is full, and that the fallback sign exists.
func (c *Catalog) Validate() error {
	if len(c.profiles) != SignCount {
		return fmt.Errorf("%w: %d profiles, want %d", ErrCatalog, len(c.profiles), SignCount)
	}

	if len(c.signs) != SignCount {
		return fmt.Errorf("%w: %d signs, want %d", ErrCatalog, len(c.signs), SignCount)
	}

	if len(c.songs) != SongCount {
		return fmt.Errorf("%w: %d songs, want %d", ErrCatalog, len(c.songs), SongCount)
	}

	for _, s := range c.signs {
		p, ok := c.profiles[s.Name]
		if !ok {
			return fmt.Errorf("%w: no profile for %s", ErrCatalog, s.Name)
		}

		if p.Personality == "" || p.Food == "" || p.FoodReason == "" || p.Weapon == "" || p.Clothing == "" {
			return fmt.Errorf("%w: incomplete profile for %s", ErrCatalog, s.Name)
		}
	}

	if _, ok := c.profiles[c.fallback]; !ok {
		return fmt.Errorf("%w: unknown fallback sign %q", ErrCatalog, c.fallback)
	}

	return nil
}

// Profile returns the profile for sign. Missing or unknown signs resolve to
// the fallback profile and ok is false.
func (c *Catalog) Profile(sign string) (Profile, bool) {
	if p, ok := c.profiles[sign]; ok {
		return p, true
	}

	return c.profiles[c.fallback], false
}

// Fallback returns the name of the fallback sign.
func (c *Catalog) Fallback() string {
	return c.fallback
}

// Songs returns a copy of the playlist.
func (c *Catalog) Songs() []string {
	return slices.Clone(c.songs)
}

// Signs returns a copy of the sign list in zodiac order.
func (c *Catalog) Signs() []Sign {
	out := make([]Sign, len(c.signs))
	for i, s := range c.signs {
		s.Traits = slices.Clone(s.Traits)
		out[i] = s
	}

	return out
}

// SignFor returns the sign whose range contains the given day.
// Days outside every range resolve to the fallback sign.
func (c *Catalog) SignFor(d MonthDay) Sign {
	for _, s := range c.signs {
		if s.contains(d) {
			s.Traits = slices.Clone(s.Traits)
			return s
		}
	}

	for _, s := range c.signs {
		if s.Name == c.fallback {
			s.Traits = slices.Clone(s.Traits)
			return s
		}
	}

	return Sign{Name: c.fallback}
}
