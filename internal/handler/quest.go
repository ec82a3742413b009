package handler

import (
	"net/http"
	"strconv"

	"github.com/avenwood/questscribe/internal/quest"
)

// CompleteQuestRequest is the request body for quest completion
type CompleteQuestRequest struct {
	UserID  string `json:"user_id" validate:"required,max=255"`
	QuestID string `json:"quest_id" validate:"required,max=255"`
}

// HandleGetActiveQuests returns the user's active quests with current
// suitability scores
func HandleGetActiveQuests(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		quests, err := questService.GetActiveQuests(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get active quests", err)
			return
		}

		respondJSON(w, http.StatusOK, quests)
	}
}

// HandleGetCompletedQuests returns the user's completed quests
func HandleGetCompletedQuests(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(GetOptionalQueryParam(r, "limit", "0"))

		quests, err := questService.GetCompletedQuests(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, "Get completed quests", err)
			return
		}

		respondJSON(w, http.StatusOK, quests)
	}
}

// HandleCompleteQuest marks a quest completed and applies the reward
func HandleCompleteQuest(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompleteQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Complete quest"); err != nil {
			return
		}

		result, err := questService.CompleteQuest(r.Context(), req.UserID, req.QuestID)
		if err != nil {
			respondServiceError(w, r, "Complete quest", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
