package models

import "time"

// Contact request lifecycle. Requests are created by signed-in users and
// resolved exactly once by an admin; approved and rejected are terminal.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// ContactRequest is stored in contactRequests/{id}.
type ContactRequest struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"userId" json:"userId"`
	UserEmail   string     `bson:"userEmail" json:"userEmail"`
	Subject     string     `bson:"subject" json:"subject" validate:"required"`
	Message     string     `bson:"message" json:"message" validate:"required"`
	RequestType string     `bson:"requestType" json:"requestType"`
	Status      string     `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// IsPending reports whether the request can still be resolved.
func (r *ContactRequest) IsPending() bool {
	return r.Status == RequestPending
}
