// Package contact stores contact-form submissions.
package contact

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

// ErrNotFound is returned when no contact submission matches the given id.
var ErrNotFound = errors.New("contact not found")

// Contact is a single contact-form submission.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Repository provides persistence for contact submissions.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a contact repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("contacts")}
}

// Insert records a new contact submission.
func (r *Repository) Insert(ctx context.Context, c *Contact) (*Contact, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	c.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("inserting contact: %w", err)
	}
	return c, nil
}

// List returns all submissions, newest first.
func (r *Repository) List(ctx context.Context) ([]*Contact, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	var contacts []*Contact
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("decoding contacts: %w", err)
	}
	return contacts, nil
}

// GetByID returns a submission by its id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Contact, error) {
	var c Contact
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying contact %s: %w", id.Hex(), err)
	}
	return &c, nil
}

// Update carries a partial contact update.
type Update struct {
	Name    *string
	Email   *string
	Phone   *string
	Subject *string
	Message *string
}

func (u Update) set() bson.M {
	m := bson.M{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Email != nil {
		m["email"] = *u.Email
	}
	if u.Phone != nil {
		m["phone"] = *u.Phone
	}
	if u.Subject != nil {
		m["subject"] = *u.Subject
	}
	if u.Message != nil {
		m["message"] = *u.Message
	}
	return m
}

// Update applies a partial update and returns the updated submission.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, u Update) (*Contact, error) {
	set := u.set()
	if len(set) == 0 {
		// Mongo rejects an empty $set.
		return r.GetByID(ctx, id)
	}
	var c Contact
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating contact %s: %w", id.Hex(), err)
	}
	return &c, nil
}

// Delete removes a submission by id.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting contact %s: %w", id.Hex(), err)
	}
	return nil
}
