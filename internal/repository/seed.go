package repository

import (
	"time"

	"teampulse-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "demo123"

// SeedUsers returns the demo org chart: two managers and their teams.
// Every account uses the same demo password.
func SeedUsers() []models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	now := time.Now()
	user := func(id, name, email, role, managerID string) models.User {
		return models.User{
			ID:           id,
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			ManagerID:    managerID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	return []models.User{
		user("1", "Sarah Johnson", "sarah@company.com", models.RoleManager, ""),
		user("2", "Alex Chen", "alex@company.com", models.RoleEmployee, "1"),
		user("3", "Jordan Smith", "jordan@company.com", models.RoleEmployee, "1"),
		user("4", "Maya Patel", "maya@company.com", models.RoleEmployee, "1"),
		user("5", "David Wilson", "david@company.com", models.RoleManager, ""),
		user("6", "Emma Davis", "emma@company.com", models.RoleEmployee, "5"),
		user("7", "Ryan Taylor", "ryan@company.com", models.RoleEmployee, "5"),
	}
}

// SeedFeedback returns sample feedback records so the demo dashboards are
// not empty on first login.
func SeedFeedback() []models.Feedback {
	now := time.Now()
	ackedAt := func(daysAgo int) *time.Time {
		t := now.AddDate(0, 0, -daysAgo)
		return &t
	}

	return []models.Feedback{
		{
			ID:             "1",
			ManagerID:      "1",
			EmployeeID:     "2",
			Strengths:      "Excellent problem-solving skills and great attention to detail. Alex consistently delivers high-quality code and is always willing to help teammates.",
			Improvements:   "Could benefit from more proactive communication during project planning phases. Consider participating more in team meetings.",
			Sentiment:      models.SentimentPositive,
			Acknowledged:   true,
			AcknowledgedAt: ackedAt(1),
			CreatedAt:      now.AddDate(0, 0, -10),
			UpdatedAt:      now.AddDate(0, 0, -10),
			ManagerName:    "Sarah Johnson",
			EmployeeName:   "Alex Chen",
		},
		{
			ID:           "2",
			ManagerID:    "1",
			EmployeeID:   "3",
			Strengths:    "Outstanding communication skills and natural leadership qualities. Jordan excels at mentoring junior team members.",
			Improvements: "Focus on time management for project deadlines. Sometimes takes on too many tasks simultaneously.",
			Sentiment:    models.SentimentPositive,
			CreatedAt:    now.AddDate(0, 0, -7),
			UpdatedAt:    now.AddDate(0, 0, -7),
			ManagerName:  "Sarah Johnson",
			EmployeeName: "Jordan Smith",
		},
		{
			ID:             "3",
			ManagerID:      "1",
			EmployeeID:     "4",
			Strengths:      "Creative thinking and innovative approach to problem-solving. Maya brings fresh perspectives to team discussions.",
			Improvements:   "Work on code documentation and commenting practices. Also, consider improving testing coverage.",
			Sentiment:      models.SentimentNeutral,
			Acknowledged:   true,
			AcknowledgedAt: ackedAt(2),
			CreatedAt:      now.AddDate(0, 0, -5),
			UpdatedAt:      now.AddDate(0, 0, -5),
			ManagerName:    "Sarah Johnson",
			EmployeeName:   "Maya Patel",
		},
		{
			ID:           "4",
			ManagerID:    "5",
			EmployeeID:   "6",
			Strengths:    "Exceptional analytical skills and thorough approach to testing. Emma catches bugs that others miss.",
			Improvements: "Could improve presentation skills for client meetings. Also consider learning new frontend frameworks.",
			Sentiment:    models.SentimentPositive,
			CreatedAt:    now.AddDate(0, 0, -3),
			UpdatedAt:    now.AddDate(0, 0, -3),
			ManagerName:  "David Wilson",
			EmployeeName: "Emma Davis",
		},
	}
}
