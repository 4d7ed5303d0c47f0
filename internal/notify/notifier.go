package notify

import "context"

// Notification describes a feedback record that was just written for an
// employee.
type Notification struct {
	EmployeeEmail string
	EmployeeName  string
	ManagerName   string
	Sentiment     string
}

// Notifier defines the interface for telling an employee that new
// feedback is waiting for them. Delivery is best-effort: callers never
// fail a request on a notification error.
type Notifier interface {
	Publish(ctx context.Context, n Notification) error
}
