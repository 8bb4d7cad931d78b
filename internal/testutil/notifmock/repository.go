package notifmock

import (
	"context"
	"sync"

	domain "loanportal-backend/internal/domain/notification"
)

// Repo is an in-memory notification.Repository that records creations, for
// asserting side-effect notifications in usecase tests. CreateErr makes the
// sink fail to exercise the swallow path.
type Repo struct {
	mu        sync.Mutex
	CreateErr error
	Created   []domain.Notification

	ListByUserIDFn func(ctx context.Context, userID string) ([]domain.Notification, error)
	CountUnreadFn  func(ctx context.Context, userID string) (int64, error)
	MarkReadFn     func(ctx context.Context, notificationID, userID string) (bool, error)
	MarkAllReadFn  func(ctx context.Context, userID string) error
	DeleteFn       func(ctx context.Context, notificationID, userID string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, *n)
	return nil
}

// CreatedOfType counts recorded notifications of one type.
func (m *Repo) CreatedOfType(t domain.Type) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Created {
		if c.Type == t {
			n++
		}
	}
	return n
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Notification
	for _, c := range m.Created {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *Repo) CountUnread(ctx context.Context, userID string) (int64, error) {
	if m.CountUnreadFn != nil {
		return m.CountUnreadFn(ctx, userID)
	}
	return 0, nil
}

func (m *Repo) MarkRead(ctx context.Context, notificationID, userID string) (bool, error) {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, notificationID, userID)
	}
	return false, nil
}

func (m *Repo) MarkAllRead(ctx context.Context, userID string) error {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, userID)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, notificationID, userID string) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, notificationID, userID)
	}
	return false, nil
}
