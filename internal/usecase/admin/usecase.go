// Package admin serves the dashboard: portfolio stats, distributions, and
// user management.
package admin

import (
	"context"
	"time"

	"loanportal-backend/internal/domain/fault"
	loanDomain "loanportal-backend/internal/domain/loan"
	userDomain "loanportal-backend/internal/domain/user"
)

type Usecase struct {
	loans loanDomain.Repository
	users userDomain.Repository
}

func NewUsecase(loans loanDomain.Repository, users userDomain.Repository) *Usecase {
	return &Usecase{loans: loans, users: users}
}

type StatsDTO struct {
	TotalLoans           int64   `json:"total_loans"`
	PendingLoans         int64   `json:"pending_loans"`
	ApprovedLoans        int64   `json:"approved_loans"`
	RejectedLoans        int64   `json:"rejected_loans"`
	TotalAmount          float64 `json:"total_amount"`
	TotalUsers           int64   `json:"total_users"`
	ActiveUsers          int64   `json:"active_users"`
	NewApplicationsToday int64   `json:"new_applications_today"`
}

func (u *Usecase) Stats(ctx context.Context) (*StatsDTO, error) {
	out := &StatsDTO{}
	var err error

	if out.TotalLoans, err = u.loans.Count(ctx); err != nil {
		return nil, err
	}
	if out.PendingLoans, err = u.loans.CountByStatus(ctx, loanDomain.StatusPending); err != nil {
		return nil, err
	}
	if out.ApprovedLoans, err = u.loans.CountByStatus(ctx, loanDomain.StatusApproved); err != nil {
		return nil, err
	}
	if out.RejectedLoans, err = u.loans.CountByStatus(ctx, loanDomain.StatusRejected); err != nil {
		return nil, err
	}
	if out.TotalAmount, err = u.loans.ApprovedTotal(ctx); err != nil {
		return nil, err
	}
	if out.TotalUsers, err = u.users.Count(ctx); err != nil {
		return nil, err
	}
	if out.ActiveUsers, err = u.users.CountByStatus(ctx, userDomain.StatusActive); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if out.NewApplicationsToday, err = u.loans.CountCreatedSince(ctx, midnight); err != nil {
		return nil, err
	}
	return out, nil
}

type AnalyticsDTO struct {
	StatusDistribution []loanDomain.StatusBucket `json:"status_distribution"`
	TypeDistribution   []loanDomain.TypeBucket   `json:"loan_type_distribution"`
	MonthlySeries      []loanDomain.MonthBucket  `json:"monthly_applications"`
}

func (u *Usecase) Analytics(ctx context.Context) (*AnalyticsDTO, error) {
	out := &AnalyticsDTO{}
	var err error

	if out.StatusDistribution, err = u.loans.StatusDistribution(ctx); err != nil {
		return nil, err
	}
	if out.TypeDistribution, err = u.loans.TypeDistribution(ctx); err != nil {
		return nil, err
	}
	if out.MonthlySeries, err = u.loans.MonthlySeries(ctx, 12); err != nil {
		return nil, err
	}
	return out, nil
}

type UserPageDTO struct {
	Users      []userDomain.User `json:"users"`
	Total      int64             `json:"total"`
	Page       int               `json:"current_page"`
	TotalPages int64             `json:"total_pages"`
}

func (u *Usecase) ListUsers(ctx context.Context, f userDomain.ListFilter) (*UserPageDTO, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	users, total, err := u.users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	pages := total / int64(f.Limit)
	if total%int64(f.Limit) != 0 {
		pages++
	}
	return &UserPageDTO{Users: users, Total: total, Page: f.Page, TotalPages: pages}, nil
}

func (u *Usecase) SetUserStatus(ctx context.Context, userID string, status userDomain.Status) error {
	switch status {
	case userDomain.StatusActive, userDomain.StatusInactive, userDomain.StatusSuspended:
	default:
		return fault.Invalidf("invalid user status %q", status)
	}
	ok, err := u.users.UpdateStatus(ctx, userID, status)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("user")
	}
	return nil
}

func (u *Usecase) DeleteUser(ctx context.Context, userID, actorID string) error {
	ok, err := u.users.SoftDelete(ctx, userID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("user")
	}
	return nil
}
