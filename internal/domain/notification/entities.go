package notification

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("notification not found")

type Type string

const (
	TypeLoanApproved    Type = "loan_approved"
	TypeLoanRejected    Type = "loan_rejected"
	TypePaymentDue      Type = "payment_due"
	TypePaymentReminder Type = "payment_reminder"
	TypePaymentSuccess  Type = "payment_success"
	TypeGeneral         Type = "general"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Notification struct {
	ID             uint64     `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string     `gorm:"size:32;uniqueIndex:ux_notifications_id" json:"notification_id"`
	UserID         string     `gorm:"size:32;index:idx_notifications_user" json:"user_id"`
	Title          string     `gorm:"size:255" json:"title"`
	Message        string     `gorm:"size:1000" json:"message"`
	Type           Type       `gorm:"type:enum('loan_approved','loan_rejected','payment_due','payment_reminder','payment_success','general');default:'general'" json:"type"`
	LoanID         string     `gorm:"size:32" json:"loan_id,omitempty"`
	IsRead         bool       `gorm:"default:false" json:"is_read"`
	Priority       Priority   `gorm:"type:enum('low','medium','high');default:'medium'" json:"priority"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	// Deleted only by explicit user action.
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
