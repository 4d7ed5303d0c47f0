package handlers

import (
	"log"
	"net/http"

	"teampulse-backend/internal/repository"
)

type UserHandler struct {
	userStore repository.UserStore
}

func NewUserHandler(userStore repository.UserStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
	}
}

// --- GET /api/users/team ---

func (h *UserHandler) Team(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, team)
}
