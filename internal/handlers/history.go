package handlers

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"FASHIONREC_BACK-END/internal/models"
	"FASHIONREC_BACK-END/internal/repository"
)

// recordHistory appends a style history row. Failures are logged and never
// fail the request that triggered them.
func recordHistory(ctx context.Context, store *repository.Store, log *logrus.Logger, userID, outfitID uuid.UUID, action string, metadata json.RawMessage) {
	entry := &models.StyleHistory{
		UserID:   userID,
		OutfitID: &outfitID,
		Action:   action,
		Metadata: metadata,
	}
	if err := store.History.Record(ctx, entry); err != nil {
		log.Warnf("failed to record %s for outfit %s: %v", action, outfitID, err)
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
