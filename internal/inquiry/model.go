// Package inquiry provides the property inquiry domain model, the
// snapshot linker, and data access.
package inquiry

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status represents where an inquiry is in the follow-up workflow.
type Status string

const (
	StatusNew       Status = "New"
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusRejected  Status = "Rejected"
)

// ValidStatus returns true if s is a known inquiry status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusNew, StatusPending, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

// Details is the denormalized property snapshot embedded in an
// inquiry. Every field is independently optional. The snapshot is
// frozen at write time; later edits to the referenced property never
// touch it.
type Details struct {
	Name         string   `bson:"name,omitempty" json:"name,omitempty"`
	Title        string   `bson:"title,omitempty" json:"title,omitempty"`
	Location     string   `bson:"location,omitempty" json:"location,omitempty"`
	Price        *float64 `bson:"price,omitempty" json:"price,omitempty"`
	TotalPrice   *float64 `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
	PricePerGaj  *float64 `bson:"pricePerGaj,omitempty" json:"pricePerGaj,omitempty"`
	Gaj          *float64 `bson:"gaj,omitempty" json:"gaj,omitempty"`
	Category     string   `bson:"category,omitempty" json:"category,omitempty"`
	PlotCategory string   `bson:"plotCategory,omitempty" json:"plotCategory,omitempty"`
	Image        string   `bson:"image,omitempty" json:"image,omitempty"`
}

// Inquiry represents a buyer inquiry, optionally referencing a
// property. The reference is non-owning: it survives property
// deletion.
type Inquiry struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name       string              `bson:"name" json:"name"`
	Email      string              `bson:"email" json:"email"`
	Phone      string              `bson:"phone" json:"phone"`
	Message    string              `bson:"message" json:"message"`
	Status     Status              `bson:"status" json:"status"`
	PropertyID *primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	Details    Details             `bson:"propertyDetails" json:"propertyDetails"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
}

func (i *Inquiry) prePersist(now time.Time) {
	if i.ID.IsZero() {
		i.ID = primitive.NewObjectID()
	}
	if i.Status == "" {
		i.Status = StatusNew
	}
	i.CreatedAt = now
}
