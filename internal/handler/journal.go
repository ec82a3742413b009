package handler

import (
	"net/http"
	"strconv"

	"github.com/avenwood/questscribe/internal/journal"
)

// SubmitEntryRequest is the request body for journal submission
type SubmitEntryRequest struct {
	UserID  string `json:"user_id" validate:"required,max=255"`
	Content string `json:"content" validate:"required,max=10000"`
}

// HandleSubmitEntry processes a journal entry: analysis, progression,
// and quest assignment in one call
func HandleSubmitEntry(journalService journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitEntryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit entry"); err != nil {
			return
		}

		result, err := journalService.SubmitEntry(r.Context(), req.UserID, req.Content)
		if err != nil {
			respondServiceError(w, r, "Submit entry", err)
			return
		}

		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleListEntries returns the user's recent journal entries
func HandleListEntries(journalService journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(GetOptionalQueryParam(r, "limit", "0"))

		entries, err := journalService.ListEntries(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, "List entries", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
