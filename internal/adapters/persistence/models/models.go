package models

import (
	"strconv"

	"gorm.io/gorm"
)

// ============================================================
// Legacy schema tables
// ============================================================
//
// Column names are pinned with explicit tags so the tables stay
// compatible with gym_database.db files created by earlier releases.
// Do not rename columns here.

// Member statuses
const (
	MemberStatusActive   = "ACTIVE"
	MemberStatusInactive = "INACTIVE"
)

// Payment statuses
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

// MembershipTypes are the plans offered at the front desk
var MembershipTypes = []string{"Monthly", "Quarterly", "Half-Yearly", "Yearly"}

// User represents the users table (login accounts)
type User struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Username string `gorm:"column:username;uniqueIndex;not null" json:"username"`
	Password string `gorm:"column:password;not null" json:"-"`
	FullName string `gorm:"column:fullname;not null" json:"fullname"`
	Email    string `gorm:"column:email" json:"email"`
	UserType string `gorm:"column:user_type;default:Admin" json:"user_type"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		UserType: u.UserType,
	}
}

// Member represents the members table
type Member struct {
	MemberID       uint   `gorm:"column:member_id;primaryKey" json:"member_id"`
	FullName       string `gorm:"column:full_name;not null" json:"full_name"`
	Email          string `gorm:"column:email" json:"email"`
	Phone          string `gorm:"column:phone" json:"phone"`
	Address        string `gorm:"column:address" json:"address"`
	Age            int    `gorm:"column:age" json:"age"`
	Gender         string `gorm:"column:gender" json:"gender"`
	MembershipType string `gorm:"column:membership_type" json:"membership_type"`
	JoinDate       string `gorm:"column:join_date" json:"join_date"`
	ExpiryDate     string `gorm:"column:expiry_date" json:"expiry_date"`
	Status         string `gorm:"column:status;default:ACTIVE" json:"status"`
}

func (Member) TableName() string {
	return "members"
}

func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}

// MemberResponse DTO with display-ready fields
type MemberResponse struct {
	MemberID       uint   `json:"member_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Age            string `json:"age"`
	Gender         string `json:"gender"`
	MembershipType string `json:"membership_type"`
	JoinDate       string `json:"join_date"`
	ExpiryDate     string `json:"expiry_date"`
	Status         string `json:"status"`
}

func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		MemberID:       m.MemberID,
		FullName:       m.FullName,
		Email:          m.Email,
		Phone:          m.Phone,
		Address:        m.Address,
		Age:            strconv.Itoa(m.Age),
		Gender:         m.Gender,
		MembershipType: m.MembershipType,
		JoinDate:       m.JoinDate,
		ExpiryDate:     m.ExpiryDate,
		Status:         m.Status,
	}
}

// Payment represents the payments table
type Payment struct {
	PaymentID   uint    `gorm:"column:payment_id;primaryKey" json:"payment_id"`
	MemberID    uint    `gorm:"column:member_id" json:"member_id"`
	Amount      float64 `gorm:"column:amount" json:"amount"`
	PaymentDate string  `gorm:"column:payment_date" json:"payment_date"`
	PaymentType string  `gorm:"column:payment_type" json:"payment_type"`
	Month       string  `gorm:"column:month" json:"month"`
	Status      string  `gorm:"column:status;default:PENDING" json:"status"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

// PaymentResponse DTO, left-joined with the owning member's name.
// MemberName is empty when the member row no longer exists.
type PaymentResponse struct {
	PaymentID   uint    `json:"payment_id"`
	MemberID    uint    `json:"member_id"`
	MemberName  string  `json:"member_name"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
	PaymentType string  `json:"payment_type"`
	Month       string  `json:"month"`
	Status      string  `json:"status"`
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates the three tables if absent. Safe to run on every
// process start.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Member{},
		&Payment{},
	)
}
