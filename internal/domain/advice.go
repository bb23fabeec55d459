package domain

// Request is the user profile advice is generated for.
// Every field is free text; none is required.
type Request struct {
	Nickname      string
	Birthdate     string
	Birthplace    string
	FavoriteColor string
	ZodiacSign    string
}

// Advice is the survival kit assembled for one request.
type Advice struct {
	// Sign is the sign whose profile was used. It differs from the
	// requested sign when the fallback applied.
	Sign     string
	Fallback bool

	Personality string
	Food        string
	FoodReason  string
	Weapon      string
	Clothing    string
	Song        string
	SongReason  string
}

// NewAdvice personalizes a profile with the favorite color and a song.
// The color is inserted verbatim, even when empty.
func NewAdvice(p Profile, color, song string) Advice {
	return Advice{
		Personality: p.Personality,
		Food:        p.Food + " in " + color + " packaging",
		FoodReason:  p.FoodReason,
		Weapon:      p.Weapon + " with " + color + " energy effects",
		Clothing:    p.Clothing + " with " + color + " accents",
		Song:        song,
		SongReason: "This song will create a " + color +
			" aura of confusion around you, making the aliens think you're a mystical Earth deity they shouldn't mess with!",
	}
}
