package aesthetic

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/gosimple/slug"

	"FASHIONREC_BACK-END/internal/models"
)

// Weights used when matching outfits against a profile.
const (
	primaryWeight   = 2
	secondaryWeight = 1
	occasionWeight  = 1
	maxClosetScore  = primaryWeight + secondaryWeight + occasionWeight
)

// ScoredOutfit is an outfit with its match score in [0,1].
type ScoredOutfit struct {
	Outfit models.Outfit
	Score  float64
}

// storedProfile reads the fields ranking needs from either a fallback or
// an AI produced profile. Missing fields stay empty.
type storedProfile struct {
	PrimaryStyle        string   `json:"primary_style"`
	SecondaryStyle      *string  `json:"secondary_style"`
	OccasionPreferences []string `json:"occasion_preferences"`
}

// PrimaryStyle extracts primary_style from a stored profile, or "" when absent.
func PrimaryStyle(profile json.RawMessage) string {
	var p storedProfile
	if len(profile) == 0 || json.Unmarshal(profile, &p) != nil {
		return ""
	}
	return p.PrimaryStyle
}

// RankOutfits orders outfits by how well their tags and occasion match the
// profile's styles and occasions. Outfits with equal scores keep their input
// order. At most limit outfits are returned. A profile that cannot be decoded
// still yields every outfit, scored zero, together with the decode error.
func RankOutfits(profile json.RawMessage, outfits []models.Outfit, limit int) ([]ScoredOutfit, error) {
	var p storedProfile
	var decodeErr error
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &p); err != nil {
			p = storedProfile{}
			decodeErr = fmt.Errorf("decode aesthetic profile: %w", err)
		}
	}

	primary := slug.Make(p.PrimaryStyle)
	secondary := ""
	if p.SecondaryStyle != nil {
		secondary = slug.Make(*p.SecondaryStyle)
	}

	scored := make([]ScoredOutfit, 0, len(outfits))
	for _, o := range outfits {
		points := 0
		for _, tag := range o.Tags {
			switch {
			case primary != "" && tag == primary:
				points += primaryWeight
			case secondary != "" && tag == secondary:
				points += secondaryWeight
			}
		}
		if o.Occasion != nil {
			occasion := strings.ToLower(*o.Occasion)
			for _, want := range p.OccasionPreferences {
				if strings.Contains(occasion, want) {
					points += occasionWeight
					break
				}
			}
		}
		score := float64(points) / maxClosetScore
		if score > 1 {
			score = 1
		}
		scored = append(scored, ScoredOutfit{Outfit: o, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, decodeErr
}
