package handlers

import (
	"log"
	"net/http"

	"teampulse-backend/internal/models"
	"teampulse-backend/internal/repository"
)

type DashboardHandler struct {
	feedbackStore repository.FeedbackStore
	userStore     repository.UserStore
}

func NewDashboardHandler(feedbackStore repository.FeedbackStore, userStore repository.UserStore) *DashboardHandler {
	return &DashboardHandler{
		feedbackStore: feedbackStore,
		userStore:     userStore,
	}
}

// --- GET /api/dashboard/manager ---

func (h *DashboardHandler) Manager(w http.ResponseWriter, r *http.Request) {
	manager := currentUser(w, r, h.userStore)
	if manager == nil {
		return
	}
	if !manager.IsManager() {
		writeError(w, http.StatusForbidden, "manager role required")
		return
	}

	team, err := h.userStore.TeamMembers(r.Context(), manager.ID)
	if err != nil {
		log.Printf("Error listing team members: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	records, err := h.feedbackStore.ListForManager(r.Context(), manager.ID)
	if err != nil {
		log.Printf("Error listing feedback: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, models.ManagerDashboard{
		TotalTeamMembers: len(team),
		FeedbackStats:    models.NewFeedbackStats(records),
	})
}

// --- GET /api/dashboard/employee ---

func (h *DashboardHandler) Employee(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.userStore)
	if user == nil {
		return
	}

	records, err := h.feedbackStore.ListForEmployee(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing feedback: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, models.NewFeedbackStats(records))
}
