package installment

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("installment not found")

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

type Method string

const (
	MethodStripe       Method = "stripe"
	MethodBankTransfer Method = "bank_transfer"
	MethodCash         Method = "cash"
)

// Installment is one scheduled repayment obligation of an approved loan.
// The full set for a loan is inserted in one batch at approval time and is
// never deleted.
type Installment struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	InstallmentID string `gorm:"size:32;uniqueIndex:ux_installments_id" json:"installment_id"`
	LoanID        string `gorm:"size:32;index:idx_installments_loan;uniqueIndex:ux_installments_loan_number" json:"loan_id"`
	UserID        string `gorm:"size:32;index:idx_installments_user" json:"user_id"`
	// 1..term, contiguous per loan.
	InstallmentNumber int        `gorm:"uniqueIndex:ux_installments_loan_number" json:"installment_number"`
	Amount            float64    `gorm:"type:decimal(18,2)" json:"amount"`
	DueDate           time.Time  `json:"due_date"`
	PaidDate          *time.Time `json:"paid_date,omitempty"`
	Status            Status     `gorm:"type:enum('pending','paid','overdue');default:'pending';index" json:"status"`
	PaymentMethod     Method     `gorm:"type:enum('stripe','bank_transfer','cash');default:'stripe'" json:"payment_method"`
	PaymentIntentID   string     `gorm:"size:64" json:"-"`
	LateFee           float64    `gorm:"type:decimal(18,2);default:0" json:"late_fee"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Installment) TableName() string { return "loan_installments" }
