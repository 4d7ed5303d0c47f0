package models

// FeedbackStats holds counts derived on demand from a set of feedback
// records; nothing here is stored.
type FeedbackStats struct {
	TotalFeedbacks    int            `json:"total_feedbacks"`
	AcknowledgedCount int            `json:"acknowledged_count"`
	PendingCount      int            `json:"pending_count"`
	SentimentCounts   map[string]int `json:"sentiment_counts"`
}

type ManagerDashboard struct {
	TotalTeamMembers int `json:"total_team_members"`
	FeedbackStats
}

// NewFeedbackStats computes aggregates over the given records. Every
// sentiment key is always present, so absent sentiments count as zero.
func NewFeedbackStats(records []Feedback) FeedbackStats {
	stats := FeedbackStats{
		TotalFeedbacks: len(records),
		SentimentCounts: map[string]int{
			SentimentPositive: 0,
			SentimentNeutral:  0,
			SentimentNegative: 0,
		},
	}
	for _, fb := range records {
		if fb.Acknowledged {
			stats.AcknowledgedCount++
		}
		stats.SentimentCounts[fb.Sentiment]++
	}
	stats.PendingCount = stats.TotalFeedbacks - stats.AcknowledgedCount
	return stats
}
