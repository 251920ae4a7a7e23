// db/repo_loan.go
package db

import (
	"context"

	"toolroom/models"
)

// LoanStore adapts the gorm repo to ledger.LoanStore. One row per loan,
// keyed by id; ordering on load follows creation time so the in-memory
// ledger keeps insertion order across restarts.
type LoanStore struct{ repo *Repo }

func NewLoanStore(repo *Repo) *LoanStore { return &LoanStore{repo: repo} }

func (s *LoanStore) LoadAll(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	err := s.repo.DB.WithContext(ctx).Order("created_at ASC").Find(&loans).Error
	return loans, err
}

func (s *LoanStore) Append(ctx context.Context, loan models.Loan) error {
	return s.repo.DB.WithContext(ctx).Create(&loan).Error
}

func (s *LoanStore) Update(ctx context.Context, loan models.Loan) error {
	return s.repo.DB.WithContext(ctx).Save(&loan).Error
}
