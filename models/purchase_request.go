// models/purchase_request.go
package models

import "time"

const RequestTable = "toolroom_requests"

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// PurchaseRequest is an employee's ask for new material. Delivered is
// meaningful only once the request is approved.
type PurchaseRequest struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Item          string    `gorm:"size:255;not null" json:"item"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Description   string    `gorm:"size:1000" json:"description,omitempty"`
	Category      string    `gorm:"size:20;not null" json:"category"`
	RequesterName string    `gorm:"size:255;not null" json:"requesterName"`
	RequesterID   string    `gorm:"type:uuid;index;not null" json:"requesterId"`
	RequestedAt   time.Time `gorm:"type:date;index;not null" json:"requestedAt"`

	Status    string `gorm:"size:20;index;not null" json:"status"`
	Delivered bool   `gorm:"not null;default:false" json:"delivered"`
}

func (PurchaseRequest) TableName() string { return RequestTable }

func (p *PurchaseRequest) Pending() bool { return p.Status == RequestPending }

// AwaitingDelivery reports an approved request whose material has not
// arrived yet.
func (p *PurchaseRequest) AwaitingDelivery() bool {
	return p.Status == RequestApproved && !p.Delivered
}
