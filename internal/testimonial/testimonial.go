// Package testimonial provides customer testimonials with a moderation
// status. Only approved testimonials appear on the public site.
package testimonial

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/realtydesk/realty-api/internal/fields"
)

// ErrNotFound is returned when no testimonial matches the given id.
var ErrNotFound = errors.New("testimonial not found")

// Status is the moderation state of a testimonial.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// ValidStatus reports whether s is a known moderation status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// Testimonial is a customer review submitted for display on the site.
type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Title     string             `bson:"title" json:"title"`
	Text      string             `bson:"text" json:"text"`
	Rating    fields.Str         `bson:"rating" json:"rating"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Status    Status             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (t *Testimonial) prePersist(now time.Time) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	t.CreatedAt = now
}

// Repository provides CRUD operations for testimonials.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a testimonial repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("testimonials")}
}

// Insert adds a new testimonial, pending moderation by default.
func (r *Repository) Insert(ctx context.Context, t *Testimonial) (*Testimonial, error) {
	t.prePersist(time.Now().UTC())
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("inserting testimonial: %w", err)
	}
	return t, nil
}

// List returns testimonials newest first. When onlyApproved is true the
// result is restricted to approved entries.
func (r *Repository) List(ctx context.Context, onlyApproved bool) ([]*Testimonial, error) {
	filter := bson.M{}
	if onlyApproved {
		filter["status"] = StatusApproved
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing testimonials: %w", err)
	}

	var testimonials []*Testimonial
	if err := cur.All(ctx, &testimonials); err != nil {
		return nil, fmt.Errorf("decoding testimonials: %w", err)
	}
	return testimonials, nil
}

// GetByID returns a testimonial by its id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Testimonial, error) {
	var t Testimonial
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying testimonial %s: %w", id.Hex(), err)
	}
	return &t, nil
}

// Update carries a partial testimonial update.
type Update struct {
	Name   *string
	Title  *string
	Text   *string
	Rating *fields.Str
	Image  *string
	Status *Status
}

func (u Update) set() bson.M {
	m := bson.M{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Title != nil {
		m["title"] = *u.Title
	}
	if u.Text != nil {
		m["text"] = *u.Text
	}
	if u.Rating != nil {
		m["rating"] = *u.Rating
	}
	if u.Image != nil {
		m["image"] = *u.Image
	}
	if u.Status != nil {
		m["status"] = *u.Status
	}
	return m
}

// Update applies a partial update and returns the updated testimonial.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, u Update) (*Testimonial, error) {
	set := u.set()
	if len(set) == 0 {
		// Mongo rejects an empty $set.
		return r.GetByID(ctx, id)
	}
	var t Testimonial
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating testimonial %s: %w", id.Hex(), err)
	}
	return &t, nil
}

// SetStatus changes the moderation status and returns the updated
// testimonial.
func (r *Repository) SetStatus(ctx context.Context, id primitive.ObjectID, status Status) (*Testimonial, error) {
	var t Testimonial
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating testimonial %s: %w", id.Hex(), err)
	}
	return &t, nil
}

// Delete removes a testimonial by id.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting testimonial %s: %w", id.Hex(), err)
	}
	return nil
}
