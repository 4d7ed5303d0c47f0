package models

import "time"

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

type Feedback struct {
	ID           string `bson:"_id" json:"id"`
	ManagerID    string `bson:"manager_id" json:"manager_id"`
	EmployeeID   string `bson:"employee_id" json:"employee_id"`
	Strengths    string `bson:"strengths" json:"strengths"`
	Improvements string `bson:"improvements" json:"improvements"`
	Sentiment    string `bson:"sentiment" json:"sentiment"`
	Acknowledged bool   `bson:"acknowledged" json:"acknowledged"`
	// AcknowledgedAt is set exactly once, on the first acknowledgement,
	// and is never cleared or overwritten.
	AcknowledgedAt *time.Time `bson:"acknowledged_at,omitempty" json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updated_at"`

	// ManagerName and EmployeeName are snapshots of the user names taken
	// when the feedback was written; they do not track later renames.
	ManagerName  string `bson:"manager_name" json:"manager_name"`
	EmployeeName string `bson:"employee_name" json:"employee_name"`
}

// FeedbackUpdate carries a partial update; nil fields are left untouched.
// ID, CreatedAt and the acknowledgement fields are not updatable.
type FeedbackUpdate struct {
	Strengths    *string `json:"strengths"`
	Improvements *string `json:"improvements"`
	Sentiment    *string `json:"sentiment"`
}

func ValidSentiment(s string) bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}
