package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"FASHIONREC_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the standard {error, message} body
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// DecodeJSONRequest decodes the request body into dst and writes a 400 on failure.
// Callers should return when it reports an error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Request too large", "Request body exceeds the allowed size")
		case errors.Is(err, io.EOF):
			WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "Request body is required")
		default:
			WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		}
		return err
	}
	return nil
}
