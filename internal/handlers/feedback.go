package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"teampulse-backend/internal/models"
	"teampulse-backend/internal/notify"
	"teampulse-backend/internal/repository"

	"github.com/go-chi/chi/v5"
)

type FeedbackHandler struct {
	feedbackStore repository.FeedbackStore
	userStore     repository.UserStore
	notifier      notify.Notifier
}

func NewFeedbackHandler(feedbackStore repository.FeedbackStore, userStore repository.UserStore, notifier notify.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackStore: feedbackStore,
		userStore:     userStore,
		notifier:      notifier,
	}
}

type CreateFeedbackRequest struct {
	EmployeeID   string `json:"employee_id"`
	Strengths    string `json:"strengths"`
	Improvements string `json:"improvements"`
	Sentiment    string `json:"sentiment"`
}

// --- POST /api/feedback ---

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	manager := currentUser(w, r, h.userStore)
	if manager == nil {
		return
	}
	if !manager.IsManager() {
		writeError(w, http.StatusForbidden, "manager role required")
		return
	}

	var req CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Only the employee's own manager may write feedback for them.
	employee, err := h.userStore.FindByID(r.Context(), req.EmployeeID)
	if err != nil {
		log.Printf("Error finding employee: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if employee == nil || employee.ManagerID != manager.ID {
		writeError(w, http.StatusNotFound, "employee not found in your team")
		return
	}

	feedback := &models.Feedback{
		ManagerID:    manager.ID,
		EmployeeID:   employee.ID,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    req.Sentiment,
		ManagerName:  manager.Name,
		EmployeeName: employee.Name,
	}

	if err := h.feedbackStore.Create(r.Context(), feedback); err != nil {
		if errors.Is(err, repository.ErrValidation) {
			writeError(w, http.StatusBadRequest, "strengths, improvements and a valid sentiment are required")
			return
		}
		log.Printf("Error creating feedback: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create feedback")
		return
	}

	// Fire the notification in a background goroutine (non-blocking)
	notification := notify.Notification{
		EmployeeEmail: employee.Email,
		EmployeeName:  employee.Name,
		ManagerName:   manager.Name,
		Sentiment:     feedback.Sentiment,
	}
	go func() {
		if err := h.notifier.Publish(context.Background(), notification); err != nil {
			log.Printf("Error publishing notification: %v", err)
		}
	}()

	writeJSON(w, http.StatusCreated, feedback)
}

// --- GET /api/feedback/given ---

func (h *FeedbackHandler) Given(w http.ResponseWriter, r *http.Request) {
	manager := currentUser(w, r, h.userStore)
	if manager == nil {
		return
	}
	if !manager.IsManager() {
		writeError(w, http.StatusForbidden, "manager role required")
		return
	}

	records, err := h.feedbackStore.ListForManager(r.Context(), manager.ID)
	if err != nil {
		log.Printf("Error listing feedback: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// --- GET /api/feedback/received ---

func (h *FeedbackHandler) Received(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, records)
}

// --- PUT /api/feedback/{id} ---

func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	manager := currentUser(w, r, h.userStore)
	if manager == nil {
		return
	}
	if !manager.IsManager() {
		writeError(w, http.StatusForbidden, "manager role required")
		return
	}

	id := chi.URLParam(r, "id")

	// Only the authoring manager may edit a record. Acknowledged records
	// stay editable; acknowledgement state itself is never touched here.
	existing, err := h.feedbackStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "feedback not found")
			return
		}
		log.Printf("Error finding feedback: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing.ManagerID != manager.ID {
		writeError(w, http.StatusNotFound, "feedback not found")
		return
	}

	var upd models.FeedbackUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.feedbackStore.Update(r.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "feedback not found")
		case errors.Is(err, repository.ErrValidation):
			writeError(w, http.StatusBadRequest, "strengths, improvements and a valid sentiment are required")
		default:
			log.Printf("Error updating feedback: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to update feedback")
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// --- PUT /api/feedback/{id}/acknowledge ---

func (h *FeedbackHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.userStore)
	if user == nil {
		return
	}

	id := chi.URLParam(r, "id")

	// Only the recipient may acknowledge.
	existing, err := h.feedbackStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "feedback not found")
			return
		}
		log.Printf("Error finding feedback: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing.EmployeeID != user.ID {
		writeError(w, http.StatusNotFound, "feedback not found")
		return
	}

	acked, err := h.feedbackStore.Acknowledge(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "feedback not found")
			return
		}
		log.Printf("Error acknowledging feedback: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to acknowledge feedback")
		return
	}
	writeJSON(w, http.StatusOK, acked)
}
