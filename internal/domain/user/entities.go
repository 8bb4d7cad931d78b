package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
	StatusDeleted   Status = "deleted"
)

type User struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID       string `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	FirstName    string `gorm:"size:30" json:"first_name"`
	LastName     string `gorm:"size:30" json:"last_name"`
	Email        string `gorm:"size:255;uniqueIndex:ux_users_email_active" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	PhotoURL     string `gorm:"type:text" json:"photo_url"`
	// Admin is a role on the account, provisioned out-of-band. No fixed
	// credentials anywhere in the codebase.
	Role             Role           `gorm:"type:enum('user','admin');default:'user'" json:"role"`
	Status           Status         `gorm:"type:enum('active','inactive','suspended','deleted');default:'active'" json:"status"`
	StripeCustomerID string         `gorm:"size:64" json:"-"`
	WalletBalance    float64        `gorm:"type:decimal(18,2);default:0" json:"wallet_balance"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy        string         `gorm:"size:32" json:"-"`
}

func (User) TableName() string { return "users" }

type TxKind string

const (
	TxCredit TxKind = "credit"
	TxDebit  TxKind = "debit"
)

// Signed returns the amount with the sign its kind implies.
func (k TxKind) Signed(amount float64) float64 {
	if k == TxDebit {
		return -amount
	}
	return amount
}

// WalletTransaction is one append-only ledger entry. Rows are never updated
// or deleted; corrections are new offsetting entries.
type WalletTransaction struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID      string    `gorm:"size:32;index:idx_wallet_tx_user" json:"user_id"`
	Kind        TxKind    `gorm:"type:enum('credit','debit')" json:"kind"`
	Amount      float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Description string    `gorm:"size:255" json:"description"`
	LoanID      string    `gorm:"size:32;index" json:"loan_id,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (WalletTransaction) TableName() string { return "wallet_transactions" }
