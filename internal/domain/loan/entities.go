package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("loan application not found")
	ErrAlreadyDecided    = errors.New("loan application already decided")
	ErrInvalidTransition = errors.New("invalid loan status transition")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

type Type string

const (
	TypePersonal  Type = "personal"
	TypeBusiness  Type = "business"
	TypeHome      Type = "home"
	TypeAuto      Type = "auto"
	TypeEducation Type = "education"
)

func ValidType(t Type) bool {
	switch t {
	case TypePersonal, TypeBusiness, TypeHome, TypeAuto, TypeEducation:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	Employed     EmploymentStatus = "employed"
	SelfEmployed EmploymentStatus = "self-employed"
	Unemployed   EmploymentStatus = "unemployed"
	Student      EmploymentStatus = "student"
	Retired      EmploymentStatus = "retired"
)

func ValidEmploymentStatus(s EmploymentStatus) bool {
	switch s {
	case Employed, SelfEmployed, Unemployed, Student, Retired:
		return true
	}
	return false
}

const (
	MinAmount = 1_000.0
	MaxAmount = 500_000.0
	MinTerm   = 12
	MaxTerm   = 120
)

type LoanApplication struct {
	ID       uint64  `gorm:"primaryKey;column:id" json:"-"`
	LoanID   string  `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	UserID   string  `gorm:"size:32;index:idx_loans_user" json:"user_id"`
	Amount   float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Term     int     `gorm:"type:int" json:"term"`
	Purpose  string  `gorm:"size:500" json:"purpose"`
	LoanType Type    `gorm:"type:enum('personal','business','home','auto','education');default:'personal'" json:"loan_type"`
	Status   Status  `gorm:"type:enum('pending','approved','rejected');default:'pending';index" json:"status"`

	// Underwriting inputs, optional at application time.
	MonthlyIncome    float64          `gorm:"type:decimal(18,2)" json:"monthly_income,omitempty"`
	EmploymentStatus EmploymentStatus `gorm:"size:20" json:"employment_status,omitempty"`
	CreditScore      int              `gorm:"type:int" json:"credit_score,omitempty"`

	// Set exactly once, at the pending→approved/rejected transition.
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      string     `gorm:"size:32" json:"reviewed_by,omitempty"`
	RejectionReason string     `gorm:"size:500" json:"rejection_reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

// MonthlyAmount is the equal-split installment amount. The remainder from
// floating-point division is intentionally not reconciled onto the final
// installment; see DESIGN.md.
func (l *LoanApplication) MonthlyAmount() float64 { return l.Amount / float64(l.Term) }
