// models/loan.go
package models

import "time"

const LoanTable = "toolroom_loans"

const (
	CategoryMechanical = "mechanical"
	CategoryElectrical = "electrical"
)

// ValidCategory rejects anything outside the two fixed categories. The old
// tracker let an empty category fall back to "mechanical" in one display
// path; here it is a hard requirement at creation time.
func ValidCategory(c string) bool {
	return c == CategoryMechanical || c == CategoryElectrical
}

const (
	LoanPending  = "pending"
	LoanReturned = "returned"
)

// Loan is a tool/material checkout. Borrower fields are plain text on
// purpose: borrowers need not be directory users.
type Loan struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Item          string    `gorm:"size:255;not null" json:"item"`
	Category      string    `gorm:"size:20;not null" json:"category"`
	LoanDate      time.Time `gorm:"type:date;index;not null" json:"loanDate"`
	BorrowerName  string    `gorm:"size:255;not null" json:"borrowerName"`
	BorrowerBadge string    `gorm:"size:60;not null" json:"borrowerBadge"`
	IssuedBy      string    `gorm:"size:255;not null" json:"issuedBy"`
	IssuedByID    string    `gorm:"type:uuid;not null" json:"issuedById"`

	Status    string    `gorm:"size:20;index;not null" json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	// All three are set together, exactly once, when the loan is returned.
	ReturnedAt   *time.Time `gorm:"index" json:"returnedAt,omitempty"`
	ReturnedBy   *string    `gorm:"size:255" json:"returnedBy,omitempty"`
	ReturnedByID *string    `gorm:"type:uuid" json:"returnedById,omitempty"`
}

func (Loan) TableName() string { return LoanTable }

func (l *Loan) Returned() bool { return l.Status == LoanReturned }
