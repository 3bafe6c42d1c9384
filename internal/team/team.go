// Package team stores the members shown on the site's team page.
package team

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

// ErrNotFound is returned when no team member matches the given id.
var ErrNotFound = errors.New("team member not found")

// Member is a person listed on the team page.
type Member struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Designation string             `bson:"designation" json:"designation"`
	Image       string             `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Repository provides CRUD operations for team members.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a team repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("teams")}
}

// Insert adds a new team member.
func (r *Repository) Insert(ctx context.Context, m *Member) (*Member, error) {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	m.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return nil, fmt.Errorf("inserting team member: %w", err)
	}
	return m, nil
}

// List returns all team members, newest first.
func (r *Repository) List(ctx context.Context) ([]*Member, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}

	var members []*Member
	if err := cur.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("decoding team members: %w", err)
	}
	return members, nil
}

// GetByID returns a team member by their id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Member, error) {
	var m Member
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying team member %s: %w", id.Hex(), err)
	}
	return &m, nil
}

// Update carries a partial team member update.
type Update struct {
	Name        *string
	Designation *string
	Image       *string
}

func (u Update) set() bson.M {
	m := bson.M{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Designation != nil {
		m["designation"] = *u.Designation
	}
	if u.Image != nil {
		m["image"] = *u.Image
	}
	return m
}

// Update applies a partial update and returns the updated member.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, u Update) (*Member, error) {
	set := u.set()
	if len(set) == 0 {
		// Mongo rejects an empty $set.
		return r.GetByID(ctx, id)
	}
	var m Member
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating team member %s: %w", id.Hex(), err)
	}
	return &m, nil
}

// Delete removes a team member by id.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting team member %s: %w", id.Hex(), err)
	}
	return nil
}
