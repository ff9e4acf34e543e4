package dto

import (
	"encoding/json"
	"time"

	"FASHIONREC_BACK-END/internal/models"
)

// NewStyleHistoryEntries converts history rows
func NewStyleHistoryEntries(rows []models.StyleHistory) []StyleHistoryEntry {
	out := make([]StyleHistoryEntry, 0, len(rows))
	for _, h := range rows {
		entry := StyleHistoryEntry{
			ID:        h.ID.String(),
			Action:    h.Action,
			Metadata:  h.Metadata,
			CreatedAt: h.CreatedAt.Format(time.RFC3339),
		}
		if h.OutfitID != nil {
			s := h.OutfitID.String()
			entry.OutfitID = &s
		}
		if len(entry.Metadata) == 0 {
			entry.Metadata = json.RawMessage(`{}`)
		}
		out = append(out, entry)
	}
	return out
}
