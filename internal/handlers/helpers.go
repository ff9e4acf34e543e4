package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"FASHIONREC_BACK-END/internal/utils"
)

// currentUser returns the id stored by the auth middleware, answering 401 when absent
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access token required", "")
	}
	return userID, ok
}

// pathUUID parses a uuid path value, answering 404 with notFound when it is malformed
func pathUUID(w http.ResponseWriter, r *http.Request, name, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, notFound, "")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads a non-negative integer query parameter clamped to max
func queryInt(r *http.Request, name string, def, max int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return def
	}
	if max > 0 && v > max {
		return max
	}
	return v
}

// queryBool reads an optional boolean query parameter
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func writeValidationError(w http.ResponseWriter, err error) {
	utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
}

func writeInternalError(w http.ResponseWriter) {
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "Something went wrong")
}

// isJSONObject reports whether raw is a syntactically valid JSON object
func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}

// isJSONArray reports whether raw is a syntactically valid JSON array
func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '[' && json.Valid(trimmed)
}
