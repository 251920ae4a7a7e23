// Package memstore keeps ledger records in process memory. It backs the
// test suite and the zero-infrastructure dev mode (STORE_BACKEND=memory).
package memstore

import (
	"context"
	"fmt"
	"sync"

	"toolroom/models"
)

// LoanStore implements ledger.LoanStore over a slice, preserving
// insertion order across LoadAll.
type LoanStore struct {
	mu    sync.Mutex
	loans []models.Loan
}

func NewLoanStore() *LoanStore { return &LoanStore{} }

func (s *LoanStore) LoadAll(ctx context.Context) ([]models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Loan, len(s.loans))
	copy(out, s.loans)
	return out, nil
}

func (s *LoanStore) Append(ctx context.Context, loan models.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loans = append(s.loans, loan)
	return nil
}

func (s *LoanStore) Update(ctx context.Context, loan models.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.loans {
		if s.loans[i].ID == loan.ID {
			s.loans[i] = loan
			return nil
		}
	}
	return fmt.Errorf("loan %s not in store", loan.ID)
}

// RequestStore implements ledger.RequestStore over a slice.
type RequestStore struct {
	mu       sync.Mutex
	requests []models.PurchaseRequest
}

func NewRequestStore() *RequestStore { return &RequestStore{} }

func (s *RequestStore) LoadAll(ctx context.Context) ([]models.PurchaseRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PurchaseRequest, len(s.requests))
	copy(out, s.requests)
	return out, nil
}

func (s *RequestStore) Append(ctx context.Context, req models.PurchaseRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return nil
}

func (s *RequestStore) Update(ctx context.Context, req models.PurchaseRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == req.ID {
			s.requests[i] = req
			return nil
		}
	}
	return fmt.Errorf("request %s not in store", req.ID)
}

func (s *RequestStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("request %s not in store", id)
}
