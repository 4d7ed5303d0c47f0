package notify

import (
	"context"
	"log"
)

// MockNotifier implements the Notifier interface by logging notifications
// to stdout. Used in demo mode and whenever no email provider is
// configured.
type MockNotifier struct{}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Publish(ctx context.Context, n Notification) error {
	log.Printf("📨 [MockNotifier] New %s feedback for %s <%s> from %s",
		n.Sentiment, n.EmployeeName, n.EmployeeEmail, n.ManagerName)
	return nil
}
