package inquiry

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

// ErrNotFound is returned when no inquiry matches the given id.
var ErrNotFound = errors.New("inquiry not found")

// Repository provides CRUD operations for inquiries.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates an inquiry repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("inquiries")}
}

// Insert adds a new inquiry. The status defaults to New and the
// snapshot is persisted exactly as linked and never refreshed.
func (r *Repository) Insert(ctx context.Context, i *Inquiry) (*Inquiry, error) {
	i.prePersist(time.Now().UTC())

	if _, err := r.col.InsertOne(ctx, i); err != nil {
		return nil, fmt.Errorf("inserting inquiry: %w", err)
	}
	return i, nil
}

// List returns all inquiries, newest first.
func (r *Repository) List(ctx context.Context) ([]*Inquiry, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}

	var inquiries []*Inquiry
	if err := cur.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("decoding inquiries: %w", err)
	}
	return inquiries, nil
}

// GetByID returns an inquiry by its id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Inquiry, error) {
	var i Inquiry
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&i)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying inquiry %s: %w", id.Hex(), err)
	}
	return &i, nil
}

// Update carries a partial inquiry update. The snapshot is not
// updatable: it is a point-in-time copy.
type Update struct {
	Name    *string
	Email   *string
	Phone   *string
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
	if u.Phone != nil {
		m["phone"] = *u.Phone
	}
	if u.Message != nil {
		m["message"] = *u.Message
	}
	if u.Status != nil {
		m["status"] = *u.Status
	}
	return m
}

// Update applies a partial update and returns the updated inquiry.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, u Update) (*Inquiry, error) {
	set := u.set()
	if len(set) == 0 {
		// Mongo rejects an empty $set.
		return r.GetByID(ctx, id)
	}
	var i Inquiry
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&i)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating inquiry %s: %w", id.Hex(), err)
	}
	return &i, nil
}

// Delete removes an inquiry by id.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting inquiry %s: %w", id.Hex(), err)
	}
	return nil
}
