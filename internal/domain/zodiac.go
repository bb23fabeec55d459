package domain

// FallbackSign is the sign whose profile is used when the requested sign
// is missing or not recognized.
const FallbackSign = "Aries"

// Profile is the static survival advice record for one zodiac sign.
type Profile struct {
	Personality string
	Food        string
	FoodReason  string
	Weapon      string
	Clothing    string
}

// MonthDay is a calendar day without a year.
type MonthDay struct {
	Month int
	Day   int
}

// Sign describes a zodiac sign: its birthday range and typical traits.
// Start is after End for the sign that wraps the year end.
type Sign struct {
	Name   string
	Start  MonthDay
	End    MonthDay
	Traits []string
}

// contains reports whether the given day falls in the sign's range.
func (s Sign) contains(d MonthDay) bool {
	if s.Start.Month > s.End.Month {
		return (d.Month == s.Start.Month && d.Day >= s.Start.Day) ||
			(d.Month == s.End.Month && d.Day <= s.End.Day)
	}

	return (d.Month == s.Start.Month && d.Day >= s.Start.Day) ||
		(d.Month == s.End.Month && d.Day <= s.End.Day) ||
		(d.Month > s.Start.Month && d.Month < s.End.Month)
}

var profiles = map[string]Profile{
	"Aries": {
		Personality: "brave, energetic, and natural leader",
		Food:        "high-protein energy bars and spicy foods",
		FoodReason:  "to fuel your warrior spirit and maintain your competitive edge during the invasion",
		Weapon:      "plasma sword with dual-wielding capability",
		Clothing:    "lightweight armor with flame-resistant properties",
	},
	"Taurus": {
		Personality: "reliable, practical, and incredibly stubborn",
		Food:        "comfort foods and chocolate-based survival rations",
		FoodReason:  "to keep you grounded and maintain your legendary patience under alien pressure",
		Weapon:      "heavy-duty energy shield with built-in battering ram",
		Clothing:    "earth-toned tactical gear with maximum durability",
	},
	"Gemini": {
		Personality: "adaptable, communicative, and quick-thinking",
		Food:        "variety packs of different flavored nutrients",
		FoodReason:  "to keep your versatile mind sharp and ready for any alien negotiation",
		Weapon:      "dual energy pistols with communication jammers",
		Clothing:    "color-changing camouflage suit with multiple pockets",
	},
	"Cancer": {
		Personality: "protective, intuitive, and emotionally intelligent",
		Food:        "home-style comfort foods and healing herbs",
		FoodReason:  "to nurture your protective instincts and maintain emotional balance",
		Weapon:      "defensive energy dome generator",
		Clothing:    "protective family-crest armor with emotional shielding",
	},
	"Leo": {
		Personality: "dramatic, charismatic, and naturally commanding",
		Food:        "gourmet survival meals with golden supplements",
		FoodReason:  "to maintain your royal presence and dazzling charisma",
		Weapon:      "golden energy scepter with blinding light attacks",
		Clothing:    "majestic battle robes with built-in spotlight effects",
	},
	"Virgo": {
		Personality: "perfectionist, analytical, and incredibly organized",
		Food:        "precisely measured organic nutrition cubes",
		FoodReason:  "to maintain your systematic approach to alien invasion survival",
		Weapon:      "precision laser rifle with targeting computer",
		Clothing:    "perfectly fitted tactical uniform with organizational pouches",
	},
	"Libra": {
		Personality: "balanced, diplomatic, and harmony-seeking",
		Food:        "aesthetically pleasing balanced meals",
		FoodReason:  "to maintain your inner peace and diplomatic charm",
		Weapon:      "harmony-inducing sonic weapon",
		Clothing:    "elegantly balanced armor in pleasing color combinations",
	},
	"Scorpio": {
		Personality: "intense, mysterious, and powerfully determined",
		Food:        "dark chocolate and intense flavor concentrates",
		FoodReason:  "to channel your mysterious energy and maintain your intimidating aura",
		Weapon:      "stealth energy daggers with poison effects",
		Clothing:    "dark, form-fitting armor with mysterious glowing accents",
	},
	"Sagittarius": {
		Personality: "adventurous, optimistic, and freedom-loving",
		Food:        "international cuisine survival packs",
		FoodReason:  "to fuel your adventurous spirit and wanderlust",
		Weapon:      "long-range energy bow with explosive arrows",
		Clothing:    "explorer gear with built-in navigation systems",
	},
	"Capricorn": {
		Personality: "ambitious, disciplined, and naturally authoritative",
		Food:        "traditional, substantial meals with leadership vitamins",
		FoodReason:  "to maintain your commanding presence and strategic thinking",
		Weapon:      "command staff with tactical coordination abilities",
		Clothing:    "formal military-style armor with rank insignia",
	},
	"Aquarius": {
		Personality: "innovative, rebellious, and futuristically minded",
		Food:        "experimental future-foods and tech-enhanced nutrients",
		FoodReason:  "to power your revolutionary thinking and technological superiority",
		Weapon:      "advanced alien-tech reverse-engineered gadgets",
		Clothing:    "futuristic armor with LED displays and tech interfaces",
	},
	"Pisces": {
		Personality: "intuitive, empathetic, and spiritually connected",
		Food:        "seafood-based nutrients and calming herbal blends",
		FoodReason:  "to maintain your spiritual connection and empathetic abilities",
		Weapon:      "water-based energy trident with healing properties",
		Clothing:    "flowing, water-resistant robes with mystical symbols",
	},
}

// signs is ordered as the zodiac year starting at the spring equinox.
var signs = []Sign{
	{Name: "Aries", Start: MonthDay{3, 21}, End: MonthDay{4, 19},
		Traits: []string{"brave", "energetic", "impulsive", "leader", "competitive"}},
	{Name: "Taurus", Start: MonthDay{4, 20}, End: MonthDay{5, 20},
		Traits: []string{"stubborn", "reliable", "practical", "patient", "loyal"}},
	{Name: "Gemini", Start: MonthDay{5, 21}, End: MonthDay{6, 20},
		Traits: []string{"adaptable", "communicative", "curious", "versatile", "witty"}},
	{Name: "Cancer", Start: MonthDay{6, 21}, End: MonthDay{7, 22},
		Traits: []string{"protective", "emotional", "nurturing", "intuitive", "loyal"}},
	{Name: "Leo", Start: MonthDay{7, 23}, End: MonthDay{8, 22},
		Traits: []string{"dramatic", "charismatic", "confident", "generous", "creative"}},
	{Name: "Virgo", Start: MonthDay{8, 23}, End: MonthDay{9, 22},
		Traits: []string{"perfectionist", "analytical", "practical", "organized", "helpful"}},
	{Name: "Libra", Start: MonthDay{9, 23}, End: MonthDay{10, 22},
		Traits: []string{"balanced", "diplomatic", "charming", "social", "fair"}},
	{Name: "Scorpio", Start: MonthDay{10, 23}, End: MonthDay{11, 21},
		Traits: []string{"intense", "mysterious", "passionate", "determined", "loyal"}},
	{Name: "Sagittarius", Start: MonthDay{11, 22}, End: MonthDay{12, 21},
		Traits: []string{"adventurous", "optimistic", "philosophical", "honest", "freedom-loving"}},
	{Name: "Capricorn", Start: MonthDay{12, 22}, End: MonthDay{1, 19},
		Traits: []string{"ambitious", "disciplined", "practical", "responsible", "patient"}},
	{Name: "Aquarius", Start: MonthDay{1, 20}, End: MonthDay{2, 18},
		Traits: []string{"innovative", "rebellious", "independent", "humanitarian", "eccentric"}},
	{Name: "Pisces", Start: MonthDay{2, 19}, End: MonthDay{3, 20},
		Traits: []string{"intuitive", "empathetic", "artistic", "dreamy", "compassionate"}},
}

// songs is the fixed playlist a survival anthem is drawn from.
var songs = []string{
	"Bohemian Rhapsody", "Don't Stop Believin'", "Sweet Caroline", "Mr. Brightside",
	"Dancing Queen", "I Want It That Way", "Livin' on a Prayer", "Sweet Child O' Mine",
	"Hotel California", "Billie Jean", "Imagine", "Wonderwall", "Hey Jude", "Smells Like Teen Spirit",
	"Thriller", "Like a Rolling Stone", "Stairway to Heaven", "What's Up?", "I Will Survive",
	"Eye of the Tiger", "We Will Rock You", "Don't Stop Me Now", "Radioactive", "Uptown Funk",
	"Shape of You", "Blinding Lights", "Bad Guy", "Old Town Road", "Despacito", "Gangnam Style",
}
