package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type userSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	UserID           string         `gorm:"size:32;column:user_id"`
	FirstName        string         `gorm:"column:first_name"`
	LastName         string         `gorm:"column:last_name"`
	Email            string         `gorm:"column:email"`
	PasswordHash     string         `gorm:"column:password_hash"`
	PhotoURL         string         `gorm:"column:photo_url"`
	Role             string         `gorm:"type:text;column:role"` // ← no enum
	Status           string         `gorm:"type:text;column:status"`
	StripeCustomerID string         `gorm:"column:stripe_customer_id"`
	WalletBalance    float64        `gorm:"column:wallet_balance"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy        string         `gorm:"column:deleted_by"`
}

func (userSQLite) TableName() string { return "users" }

type walletTxSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	UserID      string    `gorm:"size:32;column:user_id"`
	Kind        string    `gorm:"type:text;column:kind"`
	Amount      float64   `gorm:"column:amount"`
	Description string    `gorm:"column:description"`
	LoanID      string    `gorm:"size:32;column:loan_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (walletTxSQLite) TableName() string { return "wallet_transactions" }

type loanAppSQLite struct {
	ID               uint64     `gorm:"primaryKey;column:id"`
	LoanID           string     `gorm:"size:32;column:loan_id"`
	UserID           string     `gorm:"size:32;column:user_id"`
	Amount           float64    `gorm:"column:amount"`
	Term             int        `gorm:"column:term"`
	Purpose          string     `gorm:"column:purpose"`
	LoanType         string     `gorm:"type:text;column:loan_type"`
	Status           string     `gorm:"type:text;column:status"`
	MonthlyIncome    float64    `gorm:"column:monthly_income"`
	EmploymentStatus string     `gorm:"column:employment_status"`
	CreditScore      int        `gorm:"column:credit_score"`
	ReviewedAt       *time.Time `gorm:"column:reviewed_at"`
	ReviewedBy       string     `gorm:"column:reviewed_by"`
	RejectionReason  string     `gorm:"column:rejection_reason"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (loanAppSQLite) TableName() string { return "loan_applications" }

type installmentSQLite struct {
	ID                uint64     `gorm:"primaryKey;column:id"`
	InstallmentID     string     `gorm:"size:32;column:installment_id"`
	LoanID            string     `gorm:"size:32;column:loan_id"`
	UserID            string     `gorm:"size:32;column:user_id"`
	InstallmentNumber int        `gorm:"column:installment_number"`
	Amount            float64    `gorm:"column:amount"`
	DueDate           time.Time  `gorm:"column:due_date"`
	PaidDate          *time.Time `gorm:"column:paid_date"`
	Status            string     `gorm:"type:text;column:status"`
	PaymentMethod     string     `gorm:"type:text;column:payment_method"`
	PaymentIntentID   string     `gorm:"column:payment_intent_id"`
	LateFee           float64    `gorm:"column:late_fee"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (installmentSQLite) TableName() string { return "loan_installments" }

type notificationSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	NotificationID string         `gorm:"size:32;column:notification_id"`
	UserID         string         `gorm:"size:32;column:user_id"`
	Title          string         `gorm:"column:title"`
	Message        string         `gorm:"column:message"`
	Type           string         `gorm:"type:text;column:type"`
	LoanID         string         `gorm:"size:32;column:loan_id"`
	IsRead         bool           `gorm:"column:is_read"`
	Priority       string         `gorm:"type:text;column:priority"`
	DueDate        *time.Time     `gorm:"column:due_date"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (notificationSQLite) TableName() string { return "notifications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userSQLite{}, &walletTxSQLite{}, &loanAppSQLite{},
		&installmentSQLite{}, &notificationSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
