package notify

import (
	"context"
	"errors"
	"testing"

	"loanportal-backend/internal/domain/fault"
	"loanportal-backend/internal/domain/notification"
	"loanportal-backend/internal/testutil/notifmock"
)

const userID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

func TestEmit(t *testing.T) {
	repo := &notifmock.Repo{}
	s := NewService(repo)

	s.Emit(context.Background(), Event{
		UserID:  userID,
		Type:    notification.TypeLoanApproved,
		Title:   "Loan Approved!",
		Message: "msg",
	})

	if len(repo.Created) != 1 {
		t.Fatalf("created = %d", len(repo.Created))
	}
	n := repo.Created[0]
	if len(n.NotificationID) != 32 {
		t.Errorf("notification id = %q", n.NotificationID)
	}
	if n.Priority != notification.PriorityMedium {
		t.Errorf("default priority = %s, want medium", n.Priority)
	}
}

func TestEmit_SwallowsSinkFailure(t *testing.T) {
	repo := &notifmock.Repo{CreateErr: errors.New("db down")}
	s := NewService(repo)

	// must not panic or propagate
	s.Emit(context.Background(), Event{UserID: userID, Type: notification.TypeGeneral})
}

func TestMarkRead_NotFound(t *testing.T) {
	s := NewService(&notifmock.Repo{})
	err := s.MarkRead(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef", userID)
	if fault.KindOf(err) != fault.KindNotFound {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestMarkRead(t *testing.T) {
	var gotID, gotUser string
	s := NewService(&notifmock.Repo{
		MarkReadFn: func(ctx context.Context, notificationID, uid string) (bool, error) {
			gotID, gotUser = notificationID, uid
			return true, nil
		},
	})
	if err := s.MarkRead(context.Background(), "n1", userID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if gotID != "n1" || gotUser != userID {
		t.Errorf("scoped to %q/%q", gotID, gotUser)
	}
}

func TestDelete_NotFound(t *testing.T) {
	s := NewService(&notifmock.Repo{})
	err := s.Delete(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef", userID)
	if fault.KindOf(err) != fault.KindNotFound {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestList(t *testing.T) {
	repo := &notifmock.Repo{
		CountUnreadFn: func(ctx context.Context, uid string) (int64, error) { return 2, nil },
	}
	s := NewService(repo)
	s.Emit(context.Background(), Event{UserID: userID, Type: notification.TypeGeneral})
	s.Emit(context.Background(), Event{UserID: "someone-else", Type: notification.TypeGeneral})

	dto, err := s.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(dto.Notifications) != 1 || dto.Unread != 2 {
		t.Errorf("dto = %+v", dto)
	}
}
