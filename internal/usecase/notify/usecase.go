package notify

import (
	"context"

	"loanportal-backend/internal/domain/fault"
	"loanportal-backend/internal/domain/notification"
)

// User-facing notification surface: list, mark read, delete.

type ListDTO struct {
	Notifications []notification.Notification `json:"notifications"`
	Unread        int64                       `json:"unread"`
}

func (s *Service) List(ctx context.Context, userID string) (*ListDTO, error) {
	items, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ListDTO{Notifications: items, Unread: unread}, nil
}

func (s *Service) MarkRead(ctx context.Context, notificationID, userID string) error {
	ok, err := s.repo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("notification")
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, notificationID, userID string) error {
	ok, err := s.repo.Delete(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("notification")
	}
	return nil
}
