package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := NewCatalog("")
	require.NoError(t, err)

	return c
}

func TestNewCatalog(t *testing.T) {
	c := newTestCatalog(t)

	assert.Equal(t, FallbackSign, c.Fallback())
	assert.Len(t, c.Songs(), SongCount)
	assert.Len(t, c.Signs(), SignCount)
}

func TestNewCatalog_CustomFallback(t *testing.T) {
	c, err := NewCatalog("Pisces")
	require.NoError(t, err)

	p, ok := c.Profile("Nope")
	assert.False(t, ok)
	assert.Equal(t, "intuitive, empathetic, and spiritually connected", p.Personality)
}

func TestNewCatalog_UnknownFallback(t *testing.T) {
	c, err := NewCatalog("Ophiuchus")

	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, IsCatalog(err))
	assert.Contains(t, err.Error(), "Ophiuchus")
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr string
	}{
		{
			name:    "missing song",
			mutate:  func(c *Catalog) { c.songs = c.songs[:SongCount-1] },
			wantErr: "29 songs",
		},
		{
			name: "missing profile",
			mutate: func(c *Catalog) {
				p := make(map[string]Profile, len(c.profiles))
				for k, v := range c.profiles {
					if k != "Leo" {
						p[k] = v
					}
				}
				c.profiles = p
			},
			wantErr: "11 profiles",
		},
		{
			name: "incomplete profile",
			mutate: func(c *Catalog) {
				p := make(map[string]Profile, len(c.profiles))
				for k, v := range c.profiles {
					p[k] = v
				}
				leo := p["Leo"]
				leo.Weapon = ""
				p["Leo"] = leo
				c.profiles = p
			},
			wantErr: "incomplete profile for Leo",
		},
		{
			name:    "missing sign",
			mutate:  func(c *Catalog) { c.signs = c.signs[1:] },
			wantErr: "11 signs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog(t)
			tt.mutate(c)

			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCatalog)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalog_Profile_AllSigns(t *testing.T) {
	c := newTestCatalog(t)

	for _, s := range c.Signs() {
		t.Run(s.Name, func(t *testing.T) {
			p, ok := c.Profile(s.Name)
			require.True(t, ok)
			assert.Equal(t, profiles[s.Name], p)
		})
	}
}

func TestCatalog_Profile_Fallback(t *testing.T) {
	c := newTestCatalog(t)

	for _, sign := range []string{"", "Unknown", "leo", "LEO", " Leo"} {
		t.Run("sign="+sign, func(t *testing.T) {
			p, ok := c.Profile(sign)
			assert.False(t, ok)
			assert.Equal(t, "brave, energetic, and natural leader", p.Personality)
			assert.Equal(t, profiles["Aries"].FoodReason, p.FoodReason)
		})
	}
}

func TestCatalog_SongsIsCopy(t *testing.T) {
	c := newTestCatalog(t)

	got := c.Songs()
	got[0] = "Never Gonna Give You Up"

	assert.Equal(t, "Bohemian Rhapsody", c.Songs()[0])
}

func TestCatalog_SignFor(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		day  MonthDay
		want string
	}{
		{MonthDay{3, 20}, "Pisces"},
		{MonthDay{3, 21}, "Aries"},
		{MonthDay{4, 19}, "Aries"},
		{MonthDay{4, 20}, "Taurus"},
		{MonthDay{5, 21}, "Gemini"},
		{MonthDay{6, 21}, "Cancer"},
		{MonthDay{7, 22}, "Cancer"},
		{MonthDay{7, 23}, "Leo"},
		{MonthDay{8, 1}, "Leo"},
		{MonthDay{8, 23}, "Virgo"},
		{MonthDay{9, 23}, "Libra"},
		{MonthDay{10, 23}, "Scorpio"},
		{MonthDay{11, 22}, "Sagittarius"},
		{MonthDay{12, 21}, "Sagittarius"},
		{MonthDay{12, 22}, "Capricorn"},
		{MonthDay{12, 31}, "Capricorn"},
		{MonthDay{1, 1}, "Capricorn"},
		{MonthDay{1, 19}, "Capricorn"},
		{MonthDay{1, 20}, "Aquarius"},
		{MonthDay{2, 18}, "Aquarius"},
		{MonthDay{2, 19}, "Pisces"},
		{MonthDay{2, 29}, "Pisces"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := c.SignFor(tt.day)
			assert.Equal(t, tt.want, got.Name, "day %d/%d", tt.day.Month, tt.day.Day)
			assert.Len(t, got.Traits, 5)
		})
	}
}

func TestCatalog_SignFor_OutOfRange(t *testing.T) {
	c := newTestCatalog(t)

	got := c.SignFor(MonthDay{13, 40})

	assert.Equal(t, "Aries", got.Name)
	assert.Equal(t, []string{"brave", "energetic", "impulsive", "leader", "competitive"}, got.Traits)
}

func TestCatalog_EverySignCoversItsOwnRange(t *testing.T) {
	c := newTestCatalog(t)

	for _, s := range c.Signs() {
		assert.Equal(t, s.Name, c.SignFor(s.Start).Name)
		assert.Equal(t, s.Name, c.SignFor(s.End).Name)
	}
}
