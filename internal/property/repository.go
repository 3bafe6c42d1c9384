package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no property matches the given id.
var ErrNotFound = errors.New("property not found")

// Repository provides CRUD operations for properties.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a property repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("properties")}
}

// Insert adds a new property and returns it with generated fields set.
func (r *Repository) Insert(ctx context.Context, p *Property) (*Property, error) {
	p.prePersist(time.Now().UTC())

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}
	return p, nil
}

// ListOptions controls filtering for List.
type ListOptions struct {
	Category string
	Location string
	MinPrice *float64
	MaxPrice *float64
}

// filter builds the query document: case-insensitive partial matches
// on category and location, inclusive range over totalPrice.
func (o ListOptions) filter() bson.M {
	q := bson.M{}
	if o.Category != "" {
		q["category"] = bson.M{"$regex": o.Category, "$options": "i"}
	}
	if o.Location != "" {
		q["location"] = bson.M{"$regex": o.Location, "$options": "i"}
	}
	if o.MinPrice != nil || o.MaxPrice != nil {
		price := bson.M{}
		if o.MinPrice != nil {
			price["$gte"] = *o.MinPrice
		}
		if o.MaxPrice != nil {
			price["$lte"] = *o.MaxPrice
		}
		q["totalPrice"] = price
	}
	return q
}

// List returns properties newest first, optionally filtered.
func (r *Repository) List(ctx context.Context, opts ListOptions) ([]*Property, error) {
	cur, err := r.col.Find(ctx, opts.filter(),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	var properties []*Property
	if err := cur.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decoding properties: %w", err)
	}
	return properties, nil
}

// GetByID returns a property by its id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Property, error) {
	var p Property
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying property %s: %w", id.Hex(), err)
	}
	return &p, nil
}

// Update carries a partial update: nil fields are left untouched,
// set fields replace the stored value outright. Array fields replace
// wholesale, never merge.
type Update struct {
	Name             *string
	Location         *string
	ShortDescription *string
	Category         *string
	PricePerGaj      *float64
	Gaj              *float64
	TotalPrice       *float64
	Features         *[]string
	Images           *[]string
}

// set builds the $set document. totalPrice updates carry price along,
// keeping the derived field in step.
func (u Update) set(now time.Time) bson.M {
	m := bson.M{"updatedAt": now}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Location != nil {
		m["location"] = *u.Location
	}
	if u.ShortDescription != nil {
		m["shortDescription"] = *u.ShortDescription
	}
	if u.Category != nil {
		m["category"] = *u.Category
	}
	if u.PricePerGaj != nil {
		m["pricePerGaj"] = *u.PricePerGaj
	}
	if u.Gaj != nil {
		m["Gaj"] = *u.Gaj
	}
	if u.TotalPrice != nil {
		m["totalPrice"] = *u.TotalPrice
		m["price"] = *u.TotalPrice
	}
	if u.Features != nil {
		m["features"] = *u.Features
	}
	if u.Images != nil {
		m["images"] = *u.Images
	}
	return m
}

// Update applies a partial update and returns the updated property.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, u Update) (*Property, error) {
	var p Property
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": u.set(time.Now().UTC())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating property %s: %w", id.Hex(), err)
	}
	return &p, nil
}

// Delete removes a property by id.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting property %s: %w", id.Hex(), err)
	}
	return nil
}
