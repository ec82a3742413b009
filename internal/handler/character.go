package handler

import (
	"net/http"

	"github.com/avenwood/questscribe/internal/journal"
)

// HandleGetCharacter returns the user's character with XP progress
func HandleGetCharacter(journalService journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		view, err := journalService.GetCharacter(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get character", err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}
