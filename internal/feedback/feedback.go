// Package feedback stores visitor feedback with a moderation status.
package feedback

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

// ErrNotFound is returned when no feedback entry matches the given id.
var ErrNotFound = errors.New("feedback not found")

// Status is the moderation state of a feedback entry.
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

// Feedback is a visitor-submitted rating and message.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Rating    int                `bson:"rating" json:"rating"`
	Message   string             `bson:"message" json:"message"`
	Status    Status             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (f *Feedback) prePersist(now time.Time) {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	if f.Status == "" {
		f.Status = StatusPending
	}
	f.CreatedAt = now
}

// Repository provides CRUD operations for feedback entries.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a feedback repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("feedbacks")}
}

// Insert adds a new feedback entry, pending moderation by default.
func (r *Repository) Insert(ctx context.Context, f *Feedback) (*Feedback, error) {
	f.prePersist(time.Now().UTC())
	if _, err := r.col.InsertOne(ctx, f); err != nil {
		return nil, fmt.Errorf("inserting feedback: %w", err)
	}
	return f, nil
}

// List returns feedback newest first. When onlyApproved is true the
// result is restricted to approved entries.
func (r *Repository) List(ctx context.Context, onlyApproved bool) ([]*Feedback, error) {
	filter := bson.M{}
	if onlyApproved {
		filter["status"] = StatusApproved
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}

	var entries []*Feedback
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decoding feedback: %w", err)
	}
	return entries, nil
}

// GetByID returns a feedback entry by its id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Feedback, error) {
	var f Feedback
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying feedback %s: %w", id.Hex(), err)
	}
	return &f, nil
}

// Update carries a partial feedback update.
type Update struct {
	Name    *string
	Email   *string
	Rating  *int
	Message *string
	Status  *Status
}

func (u Update) set() bson.M {
	m := bson.M{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Email != nil {
		m["email"] = *u.Email
	}
	if u.Rating != nil {
		m["rating"] = *u.Rating
	}
	if u.Message != nil {
		m["message"] = *u.Message
	}
	if u.Status != nil {
		m["status"] = *u.Status
	}
	return m
}

// Update applies a partial update and returns the updated entry.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, u Update) (*Feedback, error) {
	set := u.set()
	if len(set) == 0 {
		// Mongo rejects an empty $set.
		return r.GetByID(ctx, id)
	}
	var f Feedback
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating feedback %s: %w", id.Hex(), err)
	}
	return &f, nil
}

// SetStatus changes the moderation status and returns the updated entry.
func (r *Repository) SetStatus(ctx context.Context, id primitive.ObjectID, status Status) (*Feedback, error) {
	var f Feedback
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating feedback %s: %w", id.Hex(), err)
	}
	return &f, nil
}

// Delete removes a feedback entry by id.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting feedback %s: %w", id.Hex(), err)
	}
	return nil
}
