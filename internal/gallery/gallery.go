// Package gallery provides the image gallery domain model and data access.
package gallery

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

// ErrNotFound is returned when no gallery item matches the given id.
var ErrNotFound = errors.New("gallery item not found")

// Gallery represents a named set of site images.
type Gallery struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Images      []string           `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Repository provides CRUD operations for gallery items.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a gallery repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("galleries")}
}

// Insert adds a new gallery item.
func (r *Repository) Insert(ctx context.Context, g *Gallery) (*Gallery, error) {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	g.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, g); err != nil {
		return nil, fmt.Errorf("inserting gallery item: %w", err)
	}
	return g, nil
}

// List returns all gallery items, newest first.
func (r *Repository) List(ctx context.Context) ([]*Gallery, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing gallery items: %w", err)
	}

	var galleries []*Gallery
	if err := cur.All(ctx, &galleries); err != nil {
		return nil, fmt.Errorf("decoding gallery items: %w", err)
	}
	return galleries, nil
}

// GetByID returns a gallery item by its id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Gallery, error) {
	var g Gallery
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying gallery item %s: %w", id.Hex(), err)
	}
	return &g, nil
}

// Update carries a partial gallery update. Images replace wholesale
// when set.
type Update struct {
	Name        *string
	Description *string
	Images      *[]string
}

func (u Update) set() bson.M {
	m := bson.M{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Description != nil {
		m["description"] = *u.Description
	}
	if u.Images != nil {
		m["images"] = *u.Images
	}
	return m
}

// Update applies a partial update and returns the updated item.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, u Update) (*Gallery, error) {
	set := u.set()
	if len(set) == 0 {
		// Mongo rejects an empty $set.
		return r.GetByID(ctx, id)
	}
	var g Gallery
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating gallery item %s: %w", id.Hex(), err)
	}
	return &g, nil
}

// Delete removes a gallery item by id.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting gallery item %s: %w", id.Hex(), err)
	}
	return nil
}
