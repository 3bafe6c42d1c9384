// Package admin provides administrator accounts, kept separate from
// site users.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no admin matches the given lookup.
var ErrNotFound = errors.New("admin not found")

// Admin is an administrator account. Password holds the bcrypt hash
// and is never serialized to JSON.
type Admin struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

func (a *Admin) prePersist(now time.Time) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.CreatedAt = now
}

// Repository provides persistence for admin accounts.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates an admin repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("admins")}
}

// Insert adds a new admin. The password must already be hashed.
func (r *Repository) Insert(ctx context.Context, a *Admin) (*Admin, error) {
	a.prePersist(time.Now().UTC())
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("inserting admin: %w", err)
	}
	return a, nil
}

// GetByID returns an admin by their id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Admin, error) {
	var a Admin
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin %s: %w", id.Hex(), err)
	}
	return &a, nil
}

// FindByEmail returns the admin registered under email, case-insensitively.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	var a Admin
	err := r.col.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin by email: %w", err)
	}
	return &a, nil
}

// Update carries a partial admin profile update.
type Update struct {
	Name           *string
	Email          *string
	ProfilePicture *string
}

func (u Update) set() bson.M {
	m := bson.M{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Email != nil {
		m["email"] = strings.ToLower(strings.TrimSpace(*u.Email))
	}
	if u.ProfilePicture != nil {
		m["profilePicture"] = *u.ProfilePicture
	}
	return m
}

// Update applies a partial profile update and returns the updated admin.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, u Update) (*Admin, error) {
	set := u.set()
	if len(set) == 0 {
		// Mongo rejects an empty $set.
		return r.GetByID(ctx, id)
	}
	var a Admin
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating admin %s: %w", id.Hex(), err)
	}
	return &a, nil
}

// SetPassword stores a new password hash.
func (r *Repository) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return fmt.Errorf("updating admin password: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
