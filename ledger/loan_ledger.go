// ledger/loan_ledger.go
package ledger

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"toolroom/models"

	"github.com/google/uuid"
)

// LoanLedger owns the loan collection. All writes go through the store
// first; memory is updated only after the store acknowledges, so the UI
// never shows state the backing store did not record.
type LoanLedger struct {
	mu    sync.Mutex
	store LoanStore
	loans []models.Loan
}

// NewLoanLedger loads the existing collection from the store. A failed
// load is not fatal: the ledger starts empty and the condition is logged.
func NewLoanLedger(ctx context.Context, store LoanStore) *LoanLedger {
	loans, err := store.LoadAll(ctx)
	if err != nil {
		log.Printf("loan ledger: load failed, starting empty: %v", err)
		loans = nil
	}
	return &LoanLedger{store: store, loans: loans}
}

type CreateLoanInput struct {
	Item          string
	Category      string
	LoanDate      time.Time
	BorrowerName  string
	BorrowerBadge string
}

// Create issues a new loan in status pending. The issuer identity is
// snapshotted onto the record.
func (l *LoanLedger) Create(ctx context.Context, in CreateLoanInput, issuer models.Actor) (models.Loan, error) {
	if strings.TrimSpace(in.Item) == "" {
		return models.Loan{}, invalidf("item is required")
	}
	if !models.ValidCategory(in.Category) {
		return models.Loan{}, invalidf("unknown category %q", in.Category)
	}
	if in.LoanDate.IsZero() {
		return models.Loan{}, invalidf("loan date is required")
	}
	if strings.TrimSpace(in.BorrowerName) == "" || strings.TrimSpace(in.BorrowerBadge) == "" {
		return models.Loan{}, invalidf("borrower name and badge are required")
	}
	if issuer.ID == "" || issuer.Name == "" {
		return models.Loan{}, invalidf("issuer is required")
	}

	loan := models.Loan{
		ID:            uuid.NewString(),
		Item:          strings.TrimSpace(in.Item),
		Category:      in.Category,
		LoanDate:      dateOnly(in.LoanDate),
		BorrowerName:  strings.TrimSpace(in.BorrowerName),
		BorrowerBadge: strings.TrimSpace(in.BorrowerBadge),
		IssuedBy:      issuer.Name,
		IssuedByID:    issuer.ID,
		Status:        models.LoanPending,
		CreatedAt:     time.Now().UTC(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.Append(ctx, loan); err != nil {
		return models.Loan{}, persistErr(err)
	}
	l.loans = append(l.loans, loan)
	return loan, nil
}

// MarkReturned closes a pending loan. The transition is one-way: a second
// call on the same id fails with ErrInvalidTransition and leaves the first
// return stamp untouched.
func (l *LoanLedger) MarkReturned(ctx context.Context, id string, returner models.Actor) (models.Loan, error) {
	if returner.ID == "" || returner.Name == "" {
		return models.Loan{}, invalidf("returner is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.loans {
		if l.loans[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Loan{}, ErrNotFound
	}
	if l.loans[idx].Returned() {
		return models.Loan{}, ErrInvalidTransition
	}

	updated := l.loans[idx]
	now := time.Now().UTC()
	updated.Status = models.LoanReturned
	updated.ReturnedAt = &now
	updated.ReturnedBy = &returner.Name
	updated.ReturnedByID = &returner.ID

	if err := l.store.Update(ctx, updated); err != nil {
		return models.Loan{}, persistErr(err)
	}
	l.loans[idx] = updated
	return updated, nil
}

// List returns a snapshot of the full collection in insertion order.
func (l *LoanLedger) List() []models.Loan {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Loan, len(l.loans))
	copy(out, l.loans)
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
