package dto

import (
	"encoding/json"

	"FASHIONREC_BACK-END/internal/aiclient"
)

// Recommendation sources
const (
	SourceAI     = "ai"
	SourceCloset = "closet"
)

// RecommendationItem is one recommended look. Catalogue items come from the AI
// service; closet items carry the matching outfit.
type RecommendationItem struct {
	ID        string          `json:"id"`
	ImagePath string          `json:"imagePath,omitempty"`
	Score     float64         `json:"score"`
	Metadata  json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	Outfit    *OutfitResponse `json:"outfit,omitempty"`
}

// RecommendationsResponse is returned by GET /api/recommendations
type RecommendationsResponse struct {
	Recommendations  []RecommendationItem `json:"recommendations"`
	Source           string               `json:"source"`
	AestheticProfile json.RawMessage      `json:"aestheticProfile" swaggertype:"object"`
	Total            int                  `json:"total"`
}

// SimilarOutfitsResponse is returned by GET /api/recommendations/similar/{outfitId}
type SimilarOutfitsResponse struct {
	OutfitID        string               `json:"outfitId"`
	Recommendations []RecommendationItem `json:"recommendations"`
	Total           int                  `json:"total"`
}

// OutfitActionResponse reports the outfit state after like, save, rate or worn
type OutfitActionResponse struct {
	Message string         `json:"message"`
	Outfit  OutfitResponse `json:"outfit"`
}

// NewCatalogueItems converts AI service results
func NewCatalogueItems(results []aiclient.Recommendation) []RecommendationItem {
	out := make([]RecommendationItem, 0, len(results))
	for _, r := range results {
		out = append(out, RecommendationItem{
			ID:        r.ID,
			ImagePath: r.ImagePath,
			Score:     r.Score,
			Metadata:  r.Metadata,
		})
	}
	return out
}
