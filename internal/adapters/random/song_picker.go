// Package random provides the song draw used by the advice service.
package random

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/mroth/weightedrand/v2"
)

// ErrNoSongs is returned when a picker is built from an empty playlist.
var ErrNoSongs = errors.New("no songs to pick from")

// SongPicker draws a song uniformly at random, with replacement.
// Every title carries the same weight, so the weighted chooser degenerates
// to a uniform draw.
type SongPicker struct {
	chooser *weightedrand.Chooser[string, uint]

	// Seeded pickers draw from rng instead of the chooser.
	mu    sync.Mutex
	rng   *rand.Rand
	songs []string
}

// NewSongPicker creates an unseeded picker over songs.
func NewSongPicker(songs []string) (*SongPicker, error) {
	if len(songs) == 0 {
		return nil, ErrNoSongs
	}

	choices := make([]weightedrand.Choice[string, uint], 0, len(songs))
	for _, s := range songs {
		choices = append(choices, weightedrand.NewChoice(s, uint(1)))
	}

	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("building song chooser: %w", err)
	}

	return &SongPicker{chooser: chooser}, nil
}

// NewSeededSongPicker creates a picker whose sequence is reproducible for a
// given seed.
func NewSeededSongPicker(songs []string, seed uint64) (*SongPicker, error) {
	if len(songs) == 0 {
		return nil, ErrNoSongs
	}

	return &SongPicker{
		rng:   rand.New(rand.NewPCG(seed, seed)), //nolint:gosec // not security sensitive
		songs: append([]string(nil), songs...),
	}, nil
}

// New returns a seeded picker when seed is non-zero, otherwise an unseeded one.
func New(songs []string, seed uint64) (*SongPicker, error) {
	if seed != 0 {
		return NewSeededSongPicker(songs, seed)
	}

	return NewSongPicker(songs)
}

// Pick returns one song title.
func (p *SongPicker) Pick() (string, error) {
	if p.rng == nil {
		if p.chooser == nil {
			return "", ErrNoSongs
		}

		return p.chooser.Pick(), nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.songs[p.rng.IntN(len(p.songs))], nil
}
