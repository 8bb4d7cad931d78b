package notify

import (
	"context"
	"log"
	"time"

	"loanportal-backend/internal/domain/notification"
	"loanportal-backend/pkg/id"
)

// Event is one user-facing record tied to a lifecycle or payment transition.
type Event struct {
	UserID   string
	Type     notification.Type
	Title    string
	Message  string
	LoanID   string
	Priority notification.Priority
	DueDate  *time.Time
}

// Emitter is the fire-and-forget notification sink. Implementations must not
// propagate failures into the triggering operation.
type Emitter interface {
	Emit(ctx context.Context, ev Event)
}

type Service struct {
	repo notification.Repository
}

func NewService(repo notification.Repository) *Service { return &Service{repo: repo} }

// Emit records the event. Failures are logged and swallowed: notifications
// are a best-effort side channel and never roll back a payment or approval.
func (s *Service) Emit(ctx context.Context, ev Event) {
	n := &notification.Notification{
		NotificationID: id.NewID32(),
		UserID:         ev.UserID,
		Title:          ev.Title,
		Message:        ev.Message,
		Type:           ev.Type,
		LoanID:         ev.LoanID,
		Priority:       ev.Priority,
		DueDate:        ev.DueDate,
	}
	if n.Priority == "" {
		n.Priority = notification.PriorityMedium
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notify: emit %s for user %s failed: %v", ev.Type, ev.UserID, err)
	}
}
