package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	instDomain "loanportal-backend/internal/domain/installment"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) CreateBatch(ctx context.Context, batch []*instDomain.Installment) error {
	if len(batch) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *InstallmentRepository) GetByInstallmentID(ctx context.Context, installmentID string) (*instDomain.Installment, error) {
	var out instDomain.Installment
	res := r.db.WithContext(ctx).Where("installment_id = ?", installmentID).First(&out)
	return &out, res.Error
}

func (r *InstallmentRepository) GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*instDomain.Installment, error) {
	var out instDomain.Installment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("installment_id = ?", installmentID).
		First(&out)
	return &out, res.Error
}

func (r *InstallmentRepository) ListByLoanID(ctx context.Context, loanID string) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("installment_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) ListByUserID(ctx context.Context, userID string) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC, installment_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) CountByLoanID(ctx context.Context, loanID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&instDomain.Installment{}).
		Where("loan_id = ?", loanID).
		Count(&n)
	return n, res.Error
}

func (r *InstallmentRepository) ExistingNumbers(ctx context.Context, loanID string) ([]int, error) {
	var out []int
	res := r.db.WithContext(ctx).
		Model(&instDomain.Installment{}).
		Where("loan_id = ?", loanID).
		Order("installment_number ASC").
		Pluck("installment_number", &out)
	return out, res.Error
}

// MarkPaid is the conditional pending→paid write; the loser of a concurrent
// confirm sees RowsAffected == 0.
func (r *InstallmentRepository) MarkPaid(ctx context.Context, installmentID string, paidAt time.Time, method instDomain.Method, intentID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&instDomain.Installment{}).
		Where("installment_id = ? AND status = ?", installmentID, instDomain.StatusPending).
		Updates(map[string]any{
			"status":            instDomain.StatusPaid,
			"paid_date":         paidAt,
			"payment_method":    method,
			"payment_intent_id": intentID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
