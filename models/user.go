package models

import "time"

const UserTable = "toolroom_users"

const (
	RoleStaff     = "staff"     // toolroom attendants, issue and receive loans
	RolePurchaser = "purchaser" // purchasing desk, moderates requests
)

// User is a directory entry. The directory is seeded at startup and never
// user-registrable; records are immutable apart from LastSeenAt.
type User struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null" json:"role"`

	LastSeenAt *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }

// Actor is the denormalized who-did-it snapshot copied onto records at
// mutation time. Renaming a user later never rewrites history.
type Actor struct {
	ID   string
	Name string
}

func (u *User) Actor() Actor { return Actor{ID: u.ID, Name: u.Name} }
