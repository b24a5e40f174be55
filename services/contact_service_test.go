package services

import (
	"context"
	"testing"

	"studyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactUser() *models.User {
	return &models.User{ID: "uid-1", Email: "alice@example.com"}
}

func TestContactRequestLifecycle(t *testing.T) {
	store := newFakeStore()
	svc := NewContactServiceWith(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, contactUser(), &models.ContactRequestCreate{
		Subject:     "Access request",
		Message:     "Please add me to the physics group",
		RequestType: "access",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, created.Status)
	assert.Equal(t, "uid-1", created.UserID)
	assert.Nil(t, created.UpdatedAt)

	resolved, err := svc.Resolve(ctx, created.ID, models.RequestApproved)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, resolved.Status)
	require.NotNil(t, resolved.UpdatedAt)

	// Approval is terminal: a second resolution is rejected.
	_, err = svc.Resolve(ctx, created.ID, models.RequestRejected)
	assert.ErrorIs(t, err, models.ErrValidation)

	// The stored document kept the approved status.
	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, stored.Status)
}

func TestResolveRejection(t *testing.T) {
	store := newFakeStore()
	svc := NewContactServiceWith(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, contactUser(), &models.ContactRequestCreate{
		Subject: "Bug report",
		Message: "Upload button does nothing",
	})
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, created.ID, models.RequestRejected)
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, resolved.Status)
	assert.False(t, resolved.IsPending())
}

func TestResolveMissingRequest(t *testing.T) {
	svc := NewContactServiceWith(newFakeStore())

	_, err := svc.Resolve(context.Background(), "nope", models.RequestApproved)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCountPending(t *testing.T) {
	store := newFakeStore()
	svc := NewContactServiceWith(store)
	ctx := context.Background()

	first, err := svc.Create(ctx, contactUser(), &models.ContactRequestCreate{Subject: "A", Message: "a"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, contactUser(), &models.ContactRequestCreate{Subject: "B", Message: "b"})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, first.ID, models.RequestApproved)
	require.NoError(t, err)

	pending, err := svc.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}
