// Package schedule materializes the repayment plan of an approved loan.
package schedule

import (
	"time"

	"loanportal-backend/internal/domain/installment"
	"loanportal-backend/internal/domain/loan"
	"loanportal-backend/pkg/id"
)

// Build produces the full set of term installments: numbered 1..term, equal
// amount, due dates advancing by calendar months from the approval date
// (day-of-month anchored; end-of-month overflow follows time.AddDate
// rollover).
func Build(l *loan.LoanApplication, approvedAt time.Time) []*installment.Installment {
	monthly := l.MonthlyAmount()
	out := make([]*installment.Installment, 0, l.Term)
	for i := 1; i <= l.Term; i++ {
		out = append(out, &installment.Installment{
			InstallmentID:     id.NewID32(),
			LoanID:            l.LoanID,
			UserID:            l.UserID,
			InstallmentNumber: i,
			Amount:            monthly,
			DueDate:           approvedAt.AddDate(0, i, 0),
			Status:            installment.StatusPending,
			PaymentMethod:     installment.MethodStripe,
		})
	}
	return out
}

// Missing returns the subset of a freshly built schedule whose numbers are
// not in existing. Used by the resume path to fill a short schedule without
// duplicating rows.
func Missing(full []*installment.Installment, existing []int) []*installment.Installment {
	have := make(map[int]bool, len(existing))
	for _, n := range existing {
		have[n] = true
	}
	var out []*installment.Installment
	for _, inst := range full {
		if !have[inst.InstallmentNumber] {
			out = append(out, inst)
		}
	}
	return out
}
