// Package kvstore persists ledger records as JSON values in a redis hash
// per collection, keyed by record id. It is the key-value counterpart of
// the relational store in db/.
package kvstore

import (
	"context"
	"encoding/json"
	"sort"

	"toolroom/models"

	"github.com/redis/go-redis/v9"
)

const (
	loanHash    = "toolroom:loans"
	requestHash = "toolroom:requests"
)

// LoanStore implements ledger.LoanStore.
type LoanStore struct{ rdb *redis.Client }

func NewLoanStore(rdb *redis.Client) *LoanStore { return &LoanStore{rdb: rdb} }

func (s *LoanStore) LoadAll(ctx context.Context) ([]models.Loan, error) {
	vals, err := s.rdb.HGetAll(ctx, loanHash).Result()
	if err != nil {
		return nil, err
	}
	loans := make([]models.Loan, 0, len(vals))
	for _, raw := range vals {
		var l models.Loan
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	// hash fields come back unordered; restore creation order
	sort.Slice(loans, func(i, j int) bool {
		if !loans[i].CreatedAt.Equal(loans[j].CreatedAt) {
			return loans[i].CreatedAt.Before(loans[j].CreatedAt)
		}
		return loans[i].ID < loans[j].ID
	})
	return loans, nil
}

func (s *LoanStore) Append(ctx context.Context, loan models.Loan) error {
	return s.set(ctx, loan)
}

func (s *LoanStore) Update(ctx context.Context, loan models.Loan) error {
	return s.set(ctx, loan)
}

func (s *LoanStore) set(ctx context.Context, loan models.Loan) error {
	b, err := json.Marshal(loan)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, loanHash, loan.ID, b).Err()
}

// RequestStore implements ledger.RequestStore.
type RequestStore struct{ rdb *redis.Client }

func NewRequestStore(rdb *redis.Client) *RequestStore { return &RequestStore{rdb: rdb} }

func (s *RequestStore) LoadAll(ctx context.Context) ([]models.PurchaseRequest, error) {
	vals, err := s.rdb.HGetAll(ctx, requestHash).Result()
	if err != nil {
		return nil, err
	}
	reqs := make([]models.PurchaseRequest, 0, len(vals))
	for _, raw := range vals {
		var r models.PurchaseRequest
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	sort.Slice(reqs, func(i, j int) bool {
		if !reqs[i].RequestedAt.Equal(reqs[j].RequestedAt) {
			return reqs[i].RequestedAt.Before(reqs[j].RequestedAt)
		}
		return reqs[i].ID < reqs[j].ID
	})
	return reqs, nil
}

func (s *RequestStore) Append(ctx context.Context, req models.PurchaseRequest) error {
	return s.set(ctx, req)
}

func (s *RequestStore) Update(ctx context.Context, req models.PurchaseRequest) error {
	return s.set(ctx, req)
}

func (s *RequestStore) Delete(ctx context.Context, id string) error {
	return s.rdb.HDel(ctx, requestHash, id).Err()
}

func (s *RequestStore) set(ctx context.Context, req models.PurchaseRequest) error {
	b, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, requestHash, req.ID, b).Err()
}
