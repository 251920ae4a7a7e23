// db/repo_request.go
package db

import (
	"context"

	"toolroom/models"
)

// RequestStore adapts the gorm repo to ledger.RequestStore.
type RequestStore struct{ repo *Repo }

func NewRequestStore(repo *Repo) *RequestStore { return &RequestStore{repo: repo} }

func (s *RequestStore) LoadAll(ctx context.Context) ([]models.PurchaseRequest, error) {
	var reqs []models.PurchaseRequest
	err := s.repo.DB.WithContext(ctx).Order("requested_at ASC, id ASC").Find(&reqs).Error
	return reqs, err
}

func (s *RequestStore) Append(ctx context.Context, req models.PurchaseRequest) error {
	return s.repo.DB.WithContext(ctx).Create(&req).Error
}

func (s *RequestStore) Update(ctx context.Context, req models.PurchaseRequest) error {
	return s.repo.DB.WithContext(ctx).Save(&req).Error
}

func (s *RequestStore) Delete(ctx context.Context, id string) error {
	return s.repo.DB.WithContext(ctx).Delete(&models.PurchaseRequest{}, "id = ?", id).Error
}
