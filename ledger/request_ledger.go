// ledger/request_ledger.go
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

// RequestLedger owns the purchase-request collection. Same write-through
// discipline as the loan ledger: the store is updated first, memory after.
type RequestLedger struct {
	mu       sync.Mutex
	store    RequestStore
	requests []models.PurchaseRequest
}

func NewRequestLedger(ctx context.Context, store RequestStore) *RequestLedger {
	reqs, err := store.LoadAll(ctx)
	if err != nil {
		log.Printf("request ledger: load failed, starting empty: %v", err)
		reqs = nil
	}
	return &RequestLedger{store: store, requests: reqs}
}

type CreateRequestInput struct {
	Item        string
	Quantity    int
	Description string
	Category    string
}

func (l *RequestLedger) Create(ctx context.Context, in CreateRequestInput, requester models.Actor) (models.PurchaseRequest, error) {
	if strings.TrimSpace(in.Item) == "" {
		return models.PurchaseRequest{}, invalidf("item is required")
	}
	if in.Quantity < 1 {
		return models.PurchaseRequest{}, invalidf("quantity must be at least 1")
	}
	if !models.ValidCategory(in.Category) {
		return models.PurchaseRequest{}, invalidf("unknown category %q", in.Category)
	}
	if requester.ID == "" || requester.Name == "" {
		return models.PurchaseRequest{}, invalidf("requester is required")
	}

	req := models.PurchaseRequest{
		ID:            uuid.NewString(),
		Item:          strings.TrimSpace(in.Item),
		Quantity:      in.Quantity,
		Description:   strings.TrimSpace(in.Description),
		Category:      in.Category,
		RequesterName: requester.Name,
		RequesterID:   requester.ID,
		RequestedAt:   dateOnly(time.Now()),
		Status:        models.RequestPending,
		Delivered:     false,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.Append(ctx, req); err != nil {
		return models.PurchaseRequest{}, persistErr(err)
	}
	l.requests = append(l.requests, req)
	return req, nil
}

// UpdateRequestInput carries the editable fields; nil means "leave as is".
// Status and Delivered are never settable through Update.
type UpdateRequestInput struct {
	Item        *string
	Quantity    *int
	Description *string
	Category    *string
}

// Update edits a request while it is still pending.
func (l *RequestLedger) Update(ctx context.Context, id string, in UpdateRequestInput) (models.PurchaseRequest, error) {
	if in.Item != nil && strings.TrimSpace(*in.Item) == "" {
		return models.PurchaseRequest{}, invalidf("item cannot be empty")
	}
	if in.Quantity != nil && *in.Quantity < 1 {
		return models.PurchaseRequest{}, invalidf("quantity must be at least 1")
	}
	if in.Category != nil && !models.ValidCategory(*in.Category) {
		return models.PurchaseRequest{}, invalidf("unknown category %q", *in.Category)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.PurchaseRequest{}, ErrNotFound
	}
	if !l.requests[idx].Pending() {
		return models.PurchaseRequest{}, ErrInvalidTransition
	}

	updated := l.requests[idx]
	if in.Item != nil {
		updated.Item = strings.TrimSpace(*in.Item)
	}
	if in.Quantity != nil {
		updated.Quantity = *in.Quantity
	}
	if in.Description != nil {
		updated.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		updated.Category = *in.Category
	}

	if err := l.store.Update(ctx, updated); err != nil {
		return models.PurchaseRequest{}, persistErr(err)
	}
	l.requests[idx] = updated
	return updated, nil
}

// Delete removes a pending request permanently.
func (l *RequestLedger) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	if !l.requests[idx].Pending() {
		return ErrInvalidTransition
	}

	if err := l.store.Delete(ctx, id); err != nil {
		return persistErr(err)
	}
	l.requests = append(l.requests[:idx], l.requests[idx+1:]...)
	return nil
}

// Approve moves a pending request to approved. Terminal with respect to
// status; only the delivered flag may change afterwards.
func (l *RequestLedger) Approve(ctx context.Context, id string) (models.PurchaseRequest, error) {
	return l.setStatus(ctx, id, models.RequestApproved)
}

// Reject moves a pending request to rejected. Terminal.
func (l *RequestLedger) Reject(ctx context.Context, id string) (models.PurchaseRequest, error) {
	return l.setStatus(ctx, id, models.RequestRejected)
}

func (l *RequestLedger) setStatus(ctx context.Context, id, status string) (models.PurchaseRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.PurchaseRequest{}, ErrNotFound
	}
	if !l.requests[idx].Pending() {
		return models.PurchaseRequest{}, ErrInvalidTransition
	}

	updated := l.requests[idx]
	updated.Status = status

	if err := l.store.Update(ctx, updated); err != nil {
		return models.PurchaseRequest{}, persistErr(err)
	}
	l.requests[idx] = updated
	return updated, nil
}

// MarkDelivered flips the delivered flag on an approved request, once.
func (l *RequestLedger) MarkDelivered(ctx context.Context, id string) (models.PurchaseRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.PurchaseRequest{}, ErrNotFound
	}
	if !l.requests[idx].AwaitingDelivery() {
		return models.PurchaseRequest{}, ErrInvalidTransition
	}

	updated := l.requests[idx]
	updated.Delivered = true

	if err := l.store.Update(ctx, updated); err != nil {
		return models.PurchaseRequest{}, persistErr(err)
	}
	l.requests[idx] = updated
	return updated, nil
}

// Get returns a single request by id.
func (l *RequestLedger) Get(id string) (models.PurchaseRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOf(id)
	if idx < 0 {
		return models.PurchaseRequest{}, ErrNotFound
	}
	return l.requests[idx], nil
}

// List returns a snapshot of the full collection in insertion order.
func (l *RequestLedger) List() []models.PurchaseRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.PurchaseRequest, len(l.requests))
	copy(out, l.requests)
	return out
}

func (l *RequestLedger) indexOf(id string) int {
	for i := range l.requests {
		if l.requests[i].ID == id {
			return i
		}
	}
	return -1
}
