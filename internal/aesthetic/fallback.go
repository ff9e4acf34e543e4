package aesthetic

import (
	"math"
	"slices"
	"sort"
	"strings"
)

// MethodFallback marks profiles computed locally rather than by the AI service.
const MethodFallback = "fallback"

const (
	maxColors    = 5
	maxOccasions = 3
)

var (
	colorKeywords    = []string{"black", "white", "navy", "beige", "cream", "burgundy", "camel", "forest", "bright", "pastel", "neutral", "bold"}
	occasionKeywords = []string{"casual", "formal", "party", "work", "sport", "weekend", "evening"}
)

// Default primary styles when no answer carries an aesthetic label.
const (
	DefaultFemaleStyle = "Soft Feminine"
	DefaultStyle       = "Casual Smart"
)

// Profile is the style profile stored on a quiz.
type Profile struct {
	PrimaryStyle        string   `json:"primary_style"`
	SecondaryStyle      *string  `json:"secondary_style"`
	ColorPreferences    []string `json:"color_preferences"`
	OccasionPreferences []string `json:"occasion_preferences"`
	ConfidenceScore     float64  `json:"confidence_score"`
	AnalysisMethod      string   `json:"analysis_method"`
}

// Score converts the confidence into the integer stored on the quiz.
func (p Profile) Score() int {
	return int(math.Floor(p.ConfidenceScore * 100))
}

type labelCount struct {
	label string
	count int
}

// Fallback derives a style profile from the answers alone.
// It performs no I/O and returns the same profile for the same input.
func Fallback(gender string, answers Answers) Profile {
	var counts []labelCount
	position := map[string]int{}
	labeled := 0
	for _, answer := range answers {
		if answer.Aesthetic == "" {
			continue
		}
		labeled++
		if i, ok := position[answer.Aesthetic]; ok {
			counts[i].count++
			continue
		}
		position[answer.Aesthetic] = len(counts)
		counts = append(counts, labelCount{label: answer.Aesthetic, count: 1})
	}

	// Stable so that equal counts keep first-seen order.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	profile := Profile{
		PrimaryStyle:        defaultStyle(gender),
		ColorPreferences:    []string{},
		OccasionPreferences: []string{},
		ConfidenceScore:     0.5,
		AnalysisMethod:      MethodFallback,
	}
	if len(counts) > 0 {
		profile.PrimaryStyle = counts[0].label
		profile.ConfidenceScore = math.Min(float64(counts[0].count)/float64(labeled), 1)
	}
	if len(counts) > 1 {
		secondary := counts[1].label
		profile.SecondaryStyle = &secondary
	}

	for _, answer := range answers {
		if answer.Text == "" {
			continue
		}
		text := strings.ToLower(answer.Text)
		profile.ColorPreferences = collectKeywords(profile.ColorPreferences, text, colorKeywords)
		profile.OccasionPreferences = collectKeywords(profile.OccasionPreferences, text, occasionKeywords)
	}
	if len(profile.ColorPreferences) > maxColors {
		profile.ColorPreferences = profile.ColorPreferences[:maxColors]
	}
	if len(profile.OccasionPreferences) > maxOccasions {
		profile.OccasionPreferences = profile.OccasionPreferences[:maxOccasions]
	}

	return profile
}

func defaultStyle(gender string) string {
	if gender == "female" {
		return DefaultFemaleStyle
	}
	return DefaultStyle
}

func collectKeywords(found []string, text string, keywords []string) []string {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) && !slices.Contains(found, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

