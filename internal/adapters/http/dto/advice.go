package dto

import (
	"encoding/json"

	"github.com/jsamuelsen/alien-survival-api/internal/domain"
)

// AdviceRequest is the body of POST /generate-advice. Every field is optional.
// Pointers distinguish an absent field, which is echoed back as null.
type AdviceRequest struct {
	Nickname      *string `json:"nickname"`
	Birthdate     *string `json:"birthdate"`
	Birthplace    *string `json:"birthplace"`
	FavoriteColor *string `json:"favoriteColor"`
	ZodiacSign    *string `json:"zodiacSign"`

	// ZodiacTraits is accepted in any shape and never read.
	ZodiacTraits json.RawMessage `json:"zodiacTraits,omitempty"`
}

// ToDomain converts the request to its domain form. Absent fields become
// empty strings.
func (r *AdviceRequest) ToDomain() domain.Request {
	return domain.Request{
		Nickname:      deref(r.Nickname),
		Birthdate:     deref(r.Birthdate),
		Birthplace:    deref(r.Birthplace),
		FavoriteColor: deref(r.FavoriteColor),
		ZodiacSign:    deref(r.ZodiacSign),
	}
}

// AdviceBody is the advice object inside a successful response.
type AdviceBody struct {
	Nickname      *string `json:"nickname"`
	Birthplace    *string `json:"birthplace"`
	FavoriteColor *string `json:"favoriteColor"`
	ZodiacSign    *string `json:"zodiacSign"`
	Personality   string  `json:"personality"`
	Food          string  `json:"food"`
	FoodReason    string  `json:"foodReason"`
	Weapon        string  `json:"weapon"`
	Clothing      string  `json:"clothing"`
	Song          string  `json:"song"`
	SongReason    string  `json:"songReason"`
}

// AdviceResponse is the success envelope for POST /generate-advice.
type AdviceResponse struct {
	Success bool       `json:"success"`
	Advice  AdviceBody `json:"advice"`
}

// NewAdviceResponse echoes the request fields as received, so zodiacSign
// keeps the caller's value even when the fallback profile was used.
func NewAdviceResponse(req *AdviceRequest, a domain.Advice) AdviceResponse {
	return AdviceResponse{
		Success: true,
		Advice: AdviceBody{
			Nickname:      req.Nickname,
			Birthplace:    req.Birthplace,
			FavoriteColor: req.FavoriteColor,
			ZodiacSign:    req.ZodiacSign,
			Personality:   a.Personality,
			Food:          a.Food,
			FoodReason:    a.FoodReason,
			Weapon:        a.Weapon,
			Clothing:      a.Clothing,
			Song:          a.Song,
			SongReason:    a.SongReason,
		},
	}
}

// SignQuery binds GET /zodiac-sign query parameters.
type SignQuery struct {
	Birthdate string `form:"birthdate" json:"birthdate" validate:"required,notempty"`
}

// SignBody describes one zodiac sign.
type SignBody struct {
	Name   string   `json:"name"`
	Traits []string `json:"traits"`
}

// SignResponse is the success envelope for GET /zodiac-sign.
type SignResponse struct {
	Success bool     `json:"success"`
	Sign    SignBody `json:"sign"`
}

// NewSignResponse converts a domain sign to its response form.
func NewSignResponse(s domain.Sign) SignResponse {
	traits := s.Traits
	if traits == nil {
		traits = []string{}
	}

	return SignResponse{
		Success: true,
		Sign:    SignBody{Name: s.Name, Traits: traits},
	}
}

// HealthResponse is the fixed body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
