package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"teampulse-backend/internal/models"
)

func newFeedback(managerID, employeeID string) *models.Feedback {
	return &models.Feedback{
		ManagerID:    managerID,
		EmployeeID:   employeeID,
		Strengths:    "Great work on the release.",
		Improvements: "Write more tests.",
		Sentiment:    models.SentimentPositive,
		ManagerName:  "Sarah Johnson",
		EmployeeName: "Alex Chen",
	}
}

func TestCreateDefaults(t *testing.T) {
	store := NewMemoryFeedbackStore(nil)
	ctx := context.Background()

	fb := newFeedback("1", "2")
	if err := store.Create(ctx, fb); err != nil {
		t.Fatalf("create: %v", err)
	}

	if fb.ID == "" {
		t.Fatal("expected an ID to be assigned")
	}
	if fb.Acknowledged {
		t.Fatal("new feedback must not be acknowledged")
	}
	if fb.AcknowledgedAt != nil {
		t.Fatal("new feedback must have no acknowledged_at")
	}
	if !fb.CreatedAt.Equal(fb.UpdatedAt) {
		t.Fatalf("created_at %v != updated_at %v", fb.CreatedAt, fb.UpdatedAt)
	}

	other := newFeedback("1", "2")
	if err := store.Create(ctx, other); err != nil {
		t.Fatalf("create: %v", err)
	}
	if other.ID == fb.ID {
		t.Fatal("IDs must be unique")
	}
}

func TestCreateValidation(t *testing.T) {
	store := NewMemoryFeedbackStore(nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.Feedback)
	}{
		{"empty strengths", func(fb *models.Feedback) { fb.Strengths = "  " }},
		{"empty improvements", func(fb *models.Feedback) { fb.Improvements = "" }},
		{"bad sentiment", func(fb *models.Feedback) { fb.Sentiment = "ecstatic" }},
	}
	for _, tc := range cases {
		fb := newFeedback("1", "2")
		tc.mutate(fb)
		if err := store.Create(ctx, fb); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}

	records, _ := store.ListForManager(ctx, "1")
	if len(records) != 0 {
		t.Fatalf("rejected creates must not be stored, got %d records", len(records))
	}
}

func TestAcknowledgeIdempotent(t *testing.T) {
	store := NewMemoryFeedbackStore(nil)
	ctx := context.Background()

	fb := newFeedback("1", "2")
	if err := store.Create(ctx, fb); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := store.Acknowledge(ctx, fb.ID)
	if err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	if !first.Acknowledged || first.AcknowledgedAt == nil {
		t.Fatalf("expected acknowledged record, got %+v", first)
	}

	second, err := store.Acknowledge(ctx, fb.ID)
	if err != nil {
		t.Fatalf("second acknowledge: %v", err)
	}
	if !second.AcknowledgedAt.Equal(*first.AcknowledgedAt) {
		t.Fatalf("acknowledged_at changed on repeat call: %v != %v",
			second.AcknowledgedAt, first.AcknowledgedAt)
	}

	if _, err := store.Acknowledge(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	store := NewMemoryFeedbackStore(nil)
	ctx := context.Background()

	fb := newFeedback("1", "2")
	if err := store.Create(ctx, fb); err != nil {
		t.Fatalf("create: %v", err)
	}

	sentiment := models.SentimentNeutral
	updated, err := store.Update(ctx, fb.ID, models.FeedbackUpdate{Sentiment: &sentiment})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Sentiment != models.SentimentNeutral {
		t.Fatalf("sentiment not updated: %q", updated.Sentiment)
	}
	if updated.Strengths != fb.Strengths {
		t.Fatal("omitted fields must be left untouched")
	}
	if !updated.CreatedAt.Equal(fb.CreatedAt) {
		t.Fatal("created_at must never change")
	}
	if updated.UpdatedAt.Before(fb.UpdatedAt) {
		t.Fatal("updated_at must be refreshed")
	}
	if updated.Acknowledged || updated.AcknowledgedAt != nil {
		t.Fatal("update must not touch acknowledgement state")
	}

	empty := ""
	if _, err := store.Update(ctx, fb.ID, models.FeedbackUpdate{Strengths: &empty}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	store := NewMemoryFeedbackStore(SeedFeedback())
	ctx := context.Background()

	before, _ := store.ListForManager(ctx, "1")

	sentiment := models.SentimentNegative
	if _, err := store.Update(ctx, "missing", models.FeedbackUpdate{Sentiment: &sentiment}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, _ := store.ListForManager(ctx, "1")
	if len(after) != len(before) {
		t.Fatalf("failed update changed collection size: %d -> %d", len(before), len(after))
	}
}

func TestListFiltersAndOrdering(t *testing.T) {
	store := NewMemoryFeedbackStore(SeedFeedback())
	ctx := context.Background()

	forManager, err := store.ListForManager(ctx, "1")
	if err != nil {
		t.Fatalf("list for manager: %v", err)
	}
	if len(forManager) != 3 {
		t.Fatalf("expected 3 records for manager 1, got %d", len(forManager))
	}
	for i, fb := range forManager {
		if fb.ManagerID != "1" {
			t.Fatalf("record %s has manager %q", fb.ID, fb.ManagerID)
		}
		if i > 0 && forManager[i-1].CreatedAt.Before(fb.CreatedAt) {
			t.Fatalf("records not ordered most recent first at index %d", i)
		}
	}

	forEmployee, err := store.ListForEmployee(ctx, "2")
	if err != nil {
		t.Fatalf("list for employee: %v", err)
	}
	if len(forEmployee) != 1 || forEmployee[0].EmployeeID != "2" {
		t.Fatalf("unexpected records for employee 2: %+v", forEmployee)
	}

	// Every seeded record shows up in exactly one employee list and one
	// manager list.
	total := 0
	for _, employeeID := range []string{"2", "3", "4", "6", "7"} {
		records, _ := store.ListForEmployee(ctx, employeeID)
		total += len(records)
	}
	if total != 4 {
		t.Fatalf("employee lists cover %d records, want 4", total)
	}
}

func TestListNewestFirstAfterCreate(t *testing.T) {
	store := NewMemoryFeedbackStore(SeedFeedback())
	ctx := context.Background()

	fb := newFeedback("1", "2")
	if err := store.Create(ctx, fb); err != nil {
		t.Fatalf("create: %v", err)
	}

	forManager, _ := store.ListForManager(ctx, "1")
	if forManager[0].ID != fb.ID {
		t.Fatalf("expected new record first, got %s", forManager[0].ID)
	}
	forEmployee, _ := store.ListForEmployee(ctx, "2")
	if forEmployee[0].ID != fb.ID {
		t.Fatalf("expected new record first for employee, got %s", forEmployee[0].ID)
	}
}

func TestListStableOnEqualTimestamps(t *testing.T) {
	now := time.Now()
	records := []models.Feedback{
		{ID: "a", ManagerID: "1", EmployeeID: "2", CreatedAt: now},
		{ID: "b", ManagerID: "1", EmployeeID: "2", CreatedAt: now},
		{ID: "c", ManagerID: "1", EmployeeID: "2", CreatedAt: now},
	}
	store := NewMemoryFeedbackStore(records)

	out, err := store.ListForManager(context.Background(), "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []string{"a", "b", "c"} {
		if out[i].ID != want {
			t.Fatalf("tie order not stable: got %s at index %d, want %s", out[i].ID, i, want)
		}
	}
}
