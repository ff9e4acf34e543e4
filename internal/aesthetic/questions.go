package aesthetic

// Option is one selectable answer to a quiz question.
type Option struct {
	Value     string `json:"value"`
	Text      string `json:"text"`
	Aesthetic string `json:"aesthetic"`
}

// Question is a multiple choice quiz question.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []Option `json:"options"`
}

// Track is the question set and aesthetic vocabulary for one gender.
type Track struct {
	Questions  []Question
	Aesthetics []string
}

// TrackFor returns the quiz track for gender; ok is false for genders without one.
func TrackFor(gender string) (Track, bool) {
	t, ok := tracks[gender]
	return t, ok
}

func mc(id int, question string, opts ...Option) Question {
	return Question{ID: id, Question: question, Type: "multiple_choice", Options: opts}
}

func opt(value, text, aesthetic string) Option {
	return Option{Value: value, Text: text, Aesthetic: aesthetic}
}

var tracks = map[string]Track{
	"female": {
		Questions: []Question{
			mc(1, "Your ideal Saturday morning looks like…",
				opt("A", "Sipping tea on a balcony with a sea breeze", "Coastal Grandma"),
				opt("B", "Browsing a local bookstore for poetry", "Dark Academia"),
				opt("C", "Brunch in the city wearing a silky blouse", "Parisian Chic"),
				opt("D", "Thrifting for quirky accessories", "Indie Art Girl")),
			mc(2, "The colors in your dream wardrobe are…",
				opt("A", "Beige, ivory, and warm neutrals", "Old Money"),
				opt("B", "Black, charcoal, and deep jewel tones", "Grunge Fashion"),
				opt("C", "Pastels, pinks, and creamy whites", "Soft Feminine"),
				opt("D", "Neon, holographic, and bold brights", "Y2K")),
			mc(3, "The perfect outerwear piece is…",
				opt("A", "Oversized knit cardigan", "Cottagecore"),
				opt("B", "Tailored trench coat", "Clean Girl Minimalist"),
				opt("C", "Leather moto jacket", "Edgy Leather & Rock"),
				opt("D", "Cropped bomber jacket", "Streetwear")),
			mc(4, "Your go-to footwear vibe is…",
				opt("A", "White sneakers", "Sporty Luxe"),
				opt("B", "Doc Martens or chunky boots", "E-girl"),
				opt("C", "Ballet flats or slingbacks", "Parisian Chic"),
				opt("D", "Strappy sandals with gold accents", "Boho Luxe")),
			mc(5, "Which bag would you carry?",
				opt("A", "A straw tote with a silk scarf", "Coastal Grandma"),
				opt("B", "Structured leather satchel", "Old Money"),
				opt("C", "Micro bag in a bold color", "Y2K"),
				opt("D", "Quilted crossbody with chain", "Preppy Chic")),
			mc(6, "Your favorite season for fashion is…",
				opt("A", "Fall with layered knits", "Light Academia"),
				opt("B", "Summer with linen dresses", "Coastal Grandma"),
				opt("C", "Winter with oversized coats", "Dark Academia"),
				opt("D", "Spring with floral skirts", "Soft Feminine")),
			mc(7, "You're invited to a last-minute party. You wear…",
				opt("A", "Metallic mini skirt and crop top", "Y2K"),
				opt("B", "Silk slip dress with kitten heels", "Old Money"),
				opt("C", "Graphic tee with cargo pants", "Streetwear"),
				opt("D", "Maxi skirt with layered jewelry", "Boho Luxe")),
			mc(8, "Which activity excites you the most?",
				opt("A", "Farmers market stroll", "Cottagecore"),
				opt("B", "Rooftop cocktails", "Parisian Chic"),
				opt("C", "Music festival", "Boho Luxe"),
				opt("D", "Urban photography walk", "Indie Art Girl")),
			mc(9, "Which print are you drawn to?",
				opt("A", "Pinstripes", "Preppy Chic"),
				opt("B", "Plaid", "Dark Academia"),
				opt("C", "Ditsy floral", "Cottagecore"),
				opt("D", "Abstract graphics", "Streetwear")),
			mc(10, "Hair & beauty mood?",
				opt("A", "Sleek bun and minimal makeup", "Clean Girl Minimalist"),
				opt("B", "Messy waves with a bold lip", "Edgy Leather & Rock"),
				opt("C", "Soft curls with blush tones", "Soft Feminine"),
				opt("D", "Space buns and glitter eyeliner", "E-girl")),
			mc(11, "Your dream city to live in…",
				opt("A", "Paris", "Parisian Chic"),
				opt("B", "New York", "Streetwear"),
				opt("C", "Florence", "Old Money"),
				opt("D", "Copenhagen", "Clean Girl Minimalist")),
			mc(12, "Which fabric makes you feel most 'you'?",
				opt("A", "Linen", "Coastal Grandma"),
				opt("B", "Velvet", "Dark Academia"),
				opt("C", "Satin", "Soft Feminine"),
				opt("D", "Leather", "Edgy Leather & Rock")),
		},
		Aesthetics: []string{
			"Coastal Grandma", "Dark Academia", "Parisian Chic", "Indie Art Girl", "Old Money",
			"Grunge Fashion", "Soft Feminine", "Y2K", "Cottagecore", "Clean Girl Minimalist",
			"Edgy Leather & Rock", "Streetwear", "Sporty Luxe", "E-girl", "Boho Luxe",
			"Light Academia", "Preppy Chic",
		},
	},
	"male": {
		Questions: []Question{
			mc(1, "Ideal weekend activity?",
				opt("A", "Sailing or golfing", "Old Money Gentleman"),
				opt("B", "Skating with friends", "Skater Street"),
				opt("C", "Attending an indie band gig", "Rock/Metal Grunge"),
				opt("D", "Hiking or surfing", "Coastal Casual")),
			mc(2, "Go-to color palette?",
				opt("A", "Navy, beige, and cream", "Minimalist Neutral Luxe"),
				opt("B", "Black, steel grey, and dark green", "Techwear Futuristic"),
				opt("C", "Burgundy, camel, and forest green", "Dark Academia"),
				opt("D", "Bright reds, yellows, and blues", "Retro 90s Casual")),
			mc(3, "Preferred outerwear?",
				opt("A", "Double-breasted blazer", "Old Money Gentleman"),
				opt("B", "Puffer jacket", "Streetwear Hypebeast"),
				opt("C", "Denim jacket", "Retro 90s Casual"),
				opt("D", "Long trench coat", "Light Academia")),
			mc(4, "Your ideal shoes are…",
				opt("A", "Loafers", "Old Money Gentleman"),
				opt("B", "Chunky sneakers", "Streetwear Hypebeast"),
				opt("C", "Hiking boots", "Bohemian Traveler"),
				opt("D", "Combat boots", "Rock/Metal Grunge")),
			mc(5, "Pick a bag:",
				opt("A", "Leather briefcase", "Business Formal Power"),
				opt("B", "Crossbody sling", "Techwear Futuristic"),
				opt("C", "Canvas backpack", "Bohemian Traveler"),
				opt("D", "Belt bag", "Streetwear Hypebeast")),
			mc(6, "Favorite season for outfits?",
				opt("A", "Summer linen", "Coastal Casual"),
				opt("B", "Fall layering", "Dark Academia"),
				opt("C", "Winter wool coats", "Minimalist Neutral Luxe"),
				opt("D", "Spring polos", "Preppy Ivy League")),
			mc(7, "At a party, you're wearing…",
				opt("A", "Crisp button-down and trousers", "Urban Smart Casual"),
				opt("B", "Hoodie and cargo pants", "Streetwear Hypebeast"),
				opt("C", "Graphic tee and ripped jeans", "Rock/Metal Grunge"),
				opt("D", "Linen shirt and chinos", "Coastal Casual")),
			mc(8, "Which print do you gravitate toward?",
				opt("A", "Pinstripes", "Business Formal Power"),
				opt("B", "Plaid", "Light Academia"),
				opt("C", "Tie-dye", "Bohemian Traveler"),
				opt("D", "Camouflage", "Techwear Futuristic")),
			mc(9, "Hairstyle vibe?",
				opt("A", "Slick back", "Old Money Gentleman"),
				opt("B", "Messy waves", "Rock/Metal Grunge"),
				opt("C", "Clean fade", "Streetwear Hypebeast"),
				opt("D", "Shoulder-length natural", "Bohemian Traveler")),
			mc(10, "Dream city to live in…",
				opt("A", "Milan", "Old Money Gentleman"),
				opt("B", "Tokyo", "Techwear Futuristic"),
				opt("C", "New York", "Urban Smart Casual"),
				opt("D", "Los Angeles", "Skater Street")),
			mc(11, "Favorite fabric?",
				opt("A", "Linen", "Coastal Casual"),
				opt("B", "Tweed", "Dark Academia"),
				opt("C", "Leather", "Rock/Metal Grunge"),
				opt("D", "Wool", "Minimalist Neutral Luxe")),
			mc(12, "Your watch preference?",
				opt("A", "Gold classic analog", "Old Money Gentleman"),
				opt("B", "Digital sports watch", "Sporty Athleisure"),
				opt("C", "Minimalist silver", "Minimalist Neutral Luxe"),
				opt("D", "Smartwatch with tech features", "Techwear Futuristic")),
		},
		Aesthetics: []string{
			"Old Money Gentleman", "Streetwear Hypebeast", "Dark Academia", "Light Academia",
			"Minimalist Neutral Luxe", "Coastal Casual", "Skater Street", "Techwear Futuristic",
			"Retro 90s Casual", "Preppy Ivy League", "Bohemian Traveler", "Rock/Metal Grunge",
			"Sporty Athleisure", "Business Formal Power", "Urban Smart Casual",
		},
	},
}
