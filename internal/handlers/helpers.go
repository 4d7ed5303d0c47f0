package handlers

import (
	"encoding/json"
	"net/http"

	"teampulse-backend/internal/middleware"
	"teampulse-backend/internal/models"
	"teampulse-backend/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// currentUser resolves the authenticated request to its user record.
// A nil user means the response has already been written.
func currentUser(w http.ResponseWriter, r *http.Request, users repository.UserStore) *models.User {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil
	}

	user, err := users.FindByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return nil
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil
	}
	return user
}
