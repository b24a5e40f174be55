package services

import (
	"context"
	"fmt"
	"time"

	"studyhub/database"
	"studyhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ContactService manages user contact requests and their admin resolution.
// A request is resolved exactly once: pending moves to approved or rejected
// and stays there.
type ContactService struct {
	*BaseService
}

func NewContactService() *ContactService {
	return &ContactService{
		BaseService: NewBaseService(),
	}
}

// NewContactServiceWith builds a service over an explicit store, used by
// tests.
func NewContactServiceWith(store database.Store) *ContactService {
	return &ContactService{
		BaseService: &BaseService{store: store},
	}
}

// Create files a new pending request on behalf of the signed-in user.
func (cs *ContactService) Create(ctx context.Context, user *models.User, req *models.ContactRequestCreate) (*models.ContactRequest, error) {
	request := &models.ContactRequest{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		UserEmail:   user.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		RequestType: req.RequestType,
		Status:      models.RequestPending,
		CreatedAt:   time.Now(),
	}
	if err := cs.store.SetDocument(ctx, database.ContactRequestsCollection, request.ID, request, false); err != nil {
		return nil, err
	}
	return request, nil
}

// Get loads a single request by id.
func (cs *ContactService) Get(ctx context.Context, id string) (*models.ContactRequest, error) {
	var request models.ContactRequest
	if err := cs.store.GetDocument(ctx, database.ContactRequestsCollection, id, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns all requests, newest first.
func (cs *ContactService) List(ctx context.Context) ([]models.ContactRequest, error) {
	var requests []models.ContactRequest
	sort := bson.D{{Key: "createdAt", Value: -1}}
	if err := cs.store.ListDocuments(ctx, database.ContactRequestsCollection, sort, &requests); err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []models.ContactRequest{}
	}
	return requests, nil
}

// Resolve moves a pending request to approved or rejected, stamping the
// resolution time. Requests already resolved cannot change again.
func (cs *ContactService) Resolve(ctx context.Context, id, status string) (*models.ContactRequest, error) {
	request, err := cs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.IsPending() {
		return nil, fmt.Errorf("%w: request already %s", models.ErrValidation, request.Status)
	}

	now := time.Now()
	err = cs.store.UpdateDocument(ctx, database.ContactRequestsCollection, id, bson.M{
		"status":    status,
		"updatedAt": now,
	})
	if err != nil {
		return nil, err
	}

	request.Status = status
	request.UpdatedAt = &now
	return request, nil
}

// CountPending returns the number of unresolved requests for the dashboard.
func (cs *ContactService) CountPending(ctx context.Context) (int, error) {
	requests, err := cs.List(ctx)
	if err != nil {
		return 0, err
	}
	pending := 0
	for i := range requests {
		if requests[i].IsPending() {
			pending++
		}
	}
	return pending, nil
}
