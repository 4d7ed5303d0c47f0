package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"teampulse-backend/internal/models"

	"github.com/google/uuid"
)

// FeedbackStore is the source of truth for feedback records. Records are
// never deleted; the only mutations are partial updates and the one-way
// acknowledge transition.
type FeedbackStore interface {
	// Create assigns a fresh ID, sets created_at = updated_at = now and
	// acknowledged = false, then appends the record.
	Create(ctx context.Context, fb *models.Feedback) error
	GetByID(ctx context.Context, id string) (*models.Feedback, error)
	// Update merges the non-nil fields into the record and refreshes
	// updated_at. ID, created_at and acknowledgement state are untouched.
	Update(ctx context.Context, id string, upd models.FeedbackUpdate) (*models.Feedback, error)
	// Acknowledge marks the record acknowledged. Repeat calls are no-ops
	// returning the unchanged record: the first acknowledged_at wins.
	Acknowledge(ctx context.Context, id string) (*models.Feedback, error)
	// ListForEmployee returns records for the employee, most recent
	// first; creation-order ties keep insertion order.
	ListForEmployee(ctx context.Context, employeeID string) ([]models.Feedback, error)
	ListForManager(ctx context.Context, managerID string) ([]models.Feedback, error)
}

// MemoryFeedbackStore keeps feedback in process memory. It is the default
// backing store for the seeded demo dataset.
type MemoryFeedbackStore struct {
	mu      sync.RWMutex
	records []models.Feedback
}

func NewMemoryFeedbackStore(records []models.Feedback) *MemoryFeedbackStore {
	return &MemoryFeedbackStore{records: records}
}

func validateFeedback(strengths, improvements, sentiment string) error {
	if strings.TrimSpace(strengths) == "" || strings.TrimSpace(improvements) == "" {
		return ErrValidation
	}
	if !models.ValidSentiment(sentiment) {
		return ErrValidation
	}
	return nil
}

func (s *MemoryFeedbackStore) Create(ctx context.Context, fb *models.Feedback) error {
	if err := validateFeedback(fb.Strengths, fb.Improvements, fb.Sentiment); err != nil {
		return err
	}

	now := time.Now()
	fb.ID = uuid.New().String()
	fb.CreatedAt = now
	fb.UpdatedAt = now
	fb.Acknowledged = false
	fb.AcknowledgedAt = nil

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *fb)
	return nil
}

func (s *MemoryFeedbackStore) GetByID(ctx context.Context, id string) (*models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fb := s.find(id)
	if fb == nil {
		return nil, ErrNotFound
	}
	out := *fb
	return &out, nil
}

func (s *MemoryFeedbackStore) Update(ctx context.Context, id string, upd models.FeedbackUpdate) (*models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb := s.find(id)
	if fb == nil {
		return nil, ErrNotFound
	}

	strengths := fb.Strengths
	improvements := fb.Improvements
	sentiment := fb.Sentiment
	if upd.Strengths != nil {
		strengths = *upd.Strengths
	}
	if upd.Improvements != nil {
		improvements = *upd.Improvements
	}
	if upd.Sentiment != nil {
		sentiment = *upd.Sentiment
	}
	if err := validateFeedback(strengths, improvements, sentiment); err != nil {
		return nil, err
	}

	fb.Strengths = strengths
	fb.Improvements = improvements
	fb.Sentiment = sentiment
	fb.UpdatedAt = time.Now()
	out := *fb
	return &out, nil
}

func (s *MemoryFeedbackStore) Acknowledge(ctx context.Context, id string) (*models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb := s.find(id)
	if fb == nil {
		return nil, ErrNotFound
	}
	if !fb.Acknowledged {
		now := time.Now()
		fb.Acknowledged = true
		fb.AcknowledgedAt = &now
		fb.UpdatedAt = now
	}
	out := *fb
	return &out, nil
}

func (s *MemoryFeedbackStore) ListForEmployee(ctx context.Context, employeeID string) ([]models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(func(fb *models.Feedback) bool { return fb.EmployeeID == employeeID }), nil
}

func (s *MemoryFeedbackStore) ListForManager(ctx context.Context, managerID string) ([]models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(func(fb *models.Feedback) bool { return fb.ManagerID == managerID }), nil
}

// find returns a pointer into the backing slice; callers hold the lock.
func (s *MemoryFeedbackStore) find(id string) *models.Feedback {
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i]
		}
	}
	return nil
}

func (s *MemoryFeedbackStore) list(match func(*models.Feedback) bool) []models.Feedback {
	out := []models.Feedback{}
	for i := range s.records {
		if match(&s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	// Most recent first; the stable sort keeps insertion order for equal
	// timestamps.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
