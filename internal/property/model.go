// Package property provides the property listing domain model and data access.
package property

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property represents a marketed plot listing.
type Property struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name             string             `bson:"name" json:"name"`
	Price            float64            `bson:"price" json:"price"`
	PricePerGaj      float64            `bson:"pricePerGaj" json:"pricePerGaj"`
	Gaj              float64            `bson:"Gaj" json:"Gaj"`
	TotalPrice       float64            `bson:"totalPrice" json:"totalPrice"`
	Location         string             `bson:"location" json:"location"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	Features         []string           `bson:"features" json:"features"`
	Images           []string           `bson:"images" json:"images"`
	Category         string             `bson:"category" json:"category"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// prePersist applies the write-time transforms: generated id,
// timestamps, and the derived price field (price mirrors totalPrice
// when unset).
func (p *Property) prePersist(now time.Time) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Price == 0 && p.TotalPrice != 0 {
		p.Price = p.TotalPrice
	}
	if p.Features == nil {
		p.Features = []string{}
	}
}
