package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"toolroom/ledger"
	"toolroom/memstore"
	"toolroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var joao = models.Actor{ID: "u-10", Name: "João Silva"}

func hammerInput() ledger.CreateRequestInput {
	return ledger.CreateRequestInput{
		Item:        "Hammer",
		Quantity:    2,
		Description: "for the workshop bench",
		Category:    models.CategoryMechanical,
	}
}

func newRequestLedger(t *testing.T) *ledger.RequestLedger {
	t.Helper()
	return ledger.NewRequestLedger(context.Background(), memstore.NewRequestStore())
}

func TestCreateRequestStartsPending(t *testing.T) {
	ctx := context.Background()
	l := newRequestLedger(t)

	req, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, models.RequestPending, req.Status)
	assert.False(t, req.Delivered)
	assert.Equal(t, "João Silva", req.RequesterName)
	assert.Equal(t, "u-10", req.RequesterID)

	today := time.Now().UTC()
	assert.Equal(t, today.Year(), req.RequestedAt.Year())
	assert.Equal(t, today.YearDay(), req.RequestedAt.YearDay())
}

func TestCreateRequestValidation(t *testing.T) {
	ctx := context.Background()
	l := newRequestLedger(t)

	in := hammerInput()
	in.Quantity = 0
	_, err := l.Create(ctx, in, joao)
	assert.ErrorIs(t, err, ledger.ErrInvalidArgument)

	in = hammerInput()
	in.Quantity = -3
	_, err = l.Create(ctx, in, joao)
	assert.ErrorIs(t, err, ledger.ErrInvalidArgument)

	in = hammerInput()
	in.Item = ""
	_, err = l.Create(ctx, in, joao)
	assert.ErrorIs(t, err, ledger.ErrInvalidArgument)

	in = hammerInput()
	in.Category = "pneumatic"
	_, err = l.Create(ctx, in, joao)
	assert.ErrorIs(t, err, ledger.ErrInvalidArgument)

	assert.Empty(t, l.List())
}

func TestApproveThenRejectIsExclusive(t *testing.T) {
	ctx := context.Background()
	l := newRequestLedger(t)

	req, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)

	approved, err := l.Approve(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, approved.Status)

	_, err = l.Reject(ctx, req.ID)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)

	got, err := l.Get(req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, got.Status, "status reflects only the first transition")

	// and the mirror image
	other, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)
	_, err = l.Reject(ctx, other.ID)
	require.NoError(t, err)
	_, err = l.Approve(ctx, other.ID)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)
}

func TestMarkDeliveredOnlyWhenApproved(t *testing.T) {
	ctx := context.Background()
	l := newRequestLedger(t)

	req, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)

	// pending: not deliverable
	_, err = l.MarkDelivered(ctx, req.ID)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)

	_, err = l.Approve(ctx, req.ID)
	require.NoError(t, err)

	delivered, err := l.MarkDelivered(ctx, req.ID)
	require.NoError(t, err)
	assert.True(t, delivered.Delivered)
	assert.Equal(t, models.RequestApproved, delivered.Status)

	// delivery is one-way
	_, err = l.MarkDelivered(ctx, req.ID)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)

	// rejected requests can never be delivered
	rejected, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)
	_, err = l.Reject(ctx, rejected.ID)
	require.NoError(t, err)
	_, err = l.MarkDelivered(ctx, rejected.ID)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)

	for _, r := range l.List() {
		if r.Delivered {
			assert.Equal(t, models.RequestApproved, r.Status)
		}
	}
}

func TestUpdateAppliesOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	l := newRequestLedger(t)

	req, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)

	qty := 5
	updated, err := l.Update(ctx, req.ID, ledger.UpdateRequestInput{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, req.Item, updated.Item)
	assert.Equal(t, req.Description, updated.Description)
	assert.Equal(t, req.Category, updated.Category)
	assert.Equal(t, models.RequestPending, updated.Status)

	bad := 0
	_, err = l.Update(ctx, req.ID, ledger.UpdateRequestInput{Quantity: &bad})
	assert.ErrorIs(t, err, ledger.ErrInvalidArgument)

	empty := " "
	_, err = l.Update(ctx, req.ID, ledger.UpdateRequestInput{Item: &empty})
	assert.ErrorIs(t, err, ledger.ErrInvalidArgument)
}

func TestUpdateAndDeleteRequirePending(t *testing.T) {
	ctx := context.Background()
	l := newRequestLedger(t)

	req, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)
	_, err = l.Approve(ctx, req.ID)
	require.NoError(t, err)

	item := "Mallet"
	_, err = l.Update(ctx, req.ID, ledger.UpdateRequestInput{Item: &item})
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)

	err = l.Delete(ctx, req.ID)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)

	got, err := l.Get(req.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hammer", got.Item, "record unchanged after failed attempts")
	assert.Equal(t, models.RequestApproved, got.Status)

	// a pending request deletes cleanly
	doomed, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)
	require.NoError(t, l.Delete(ctx, doomed.ID))
	_, err = l.Get(doomed.ID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestRequestOperationsNotFound(t *testing.T) {
	ctx := context.Background()
	l := newRequestLedger(t)

	_, err := l.Approve(ctx, "missing")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	_, err = l.Reject(ctx, "missing")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	_, err = l.MarkDelivered(ctx, "missing")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	_, err = l.Update(ctx, "missing", ledger.UpdateRequestInput{})
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.ErrorIs(t, l.Delete(ctx, "missing"), ledger.ErrNotFound)
}

// failingRequestStore loads fine but rejects writes.
type failingRequestStore struct{ memstore.RequestStore }

func (s *failingRequestStore) Update(ctx context.Context, req models.PurchaseRequest) error {
	return errors.New("write refused")
}

func TestRequestWriteFailureLeavesMemoryUntouched(t *testing.T) {
	ctx := context.Background()
	store := &failingRequestStore{}
	l := ledger.NewRequestLedger(ctx, store)

	req, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)

	_, err = l.Approve(ctx, req.ID)
	assert.ErrorIs(t, err, ledger.ErrPersistence)

	got, err := l.Get(req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, got.Status, "failed write must not apply in memory")
}

func TestRequestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewRequestStore()
	l := ledger.NewRequestLedger(ctx, store)

	a, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)
	b, err := l.Create(ctx, hammerInput(), joao)
	require.NoError(t, err)
	_, err = l.Approve(ctx, a.ID)
	require.NoError(t, err)
	require.NoError(t, l.Delete(ctx, b.ID))

	reloaded := ledger.NewRequestLedger(ctx, store)
	assert.ElementsMatch(t, l.List(), reloaded.List())
}
