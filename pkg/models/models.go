package models

import (
	"time"
)

// Role constants for account authorization.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

var ValidRoles = []string{RoleStudent, RoleTeacher, RoleAdmin}

// SuperuserName is the one reserved username that receives the admin
// role at creation. Everyone else starts as a student.
const SuperuserName = "dreamseak"

// IsValidRole reports whether role is one of the permitted role tags.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Account stores a login. Username is lowercased before it reaches the
// database, so the unique index doubles as the case-insensitive
// uniqueness check.
type Account struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:20;not null;default:'student'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Announcement struct {
	ID             uint   `gorm:"primaryKey"`
	AnnouncementID string `gorm:"size:80;not null;uniqueIndex"`
	Username       string `gorm:"size:80"`
	Title          string
	Content        string
	CreatedAt      time.Time
}

// Loan is a live borrow record. The unique index on BookID makes the
// single-active-loan rule an insert-time constraint rather than a
// check-then-insert sequence; rows are removed on return, and expired
// rows are purged lazily when the book is borrowed again.
type Loan struct {
	ID         uint   `gorm:"primaryKey"`
	BookID     string `gorm:"size:120;not null;uniqueIndex"`
	Username   string `gorm:"size:80;not null;index"`
	Title      string `gorm:"not null"`
	Author     string `gorm:"not null"`
	BorrowedAt time.Time
	EndDate    time.Time `gorm:"index"`
}

// LoanPeriod is the fixed borrow duration applied to every loan.
const LoanPeriod = 14 * 24 * time.Hour
