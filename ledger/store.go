package ledger

import (
	"context"

	"toolroom/models"
)

// LoanStore is the persistence collaborator behind the loan ledger. An
// empty or absent backing store loads as an empty slice, not an error.
type LoanStore interface {
	LoadAll(ctx context.Context) ([]models.Loan, error)
	Append(ctx context.Context, loan models.Loan) error
	Update(ctx context.Context, loan models.Loan) error
}

// RequestStore is the persistence collaborator behind the request ledger.
type RequestStore interface {
	LoadAll(ctx context.Context) ([]models.PurchaseRequest, error)
	Append(ctx context.Context, req models.PurchaseRequest) error
	Update(ctx context.Context, req models.PurchaseRequest) error
	Delete(ctx context.Context, id string) error
}
