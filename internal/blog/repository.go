package blog

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

// ErrNotFound is returned when no blog post matches the given id.
var ErrNotFound = errors.New("blog not found")

// Repository provides CRUD operations for blog posts.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a blog repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("blogs")}
}

// Insert adds a new post, defaulting date and excerpt.
func (r *Repository) Insert(ctx context.Context, b *Blog) (*Blog, error) {
	b.prePersist(time.Now().UTC())

	if _, err := r.col.InsertOne(ctx, b); err != nil {
		return nil, fmt.Errorf("inserting blog: %w", err)
	}
	return b, nil
}

// List returns all posts, newest first.
func (r *Repository) List(ctx context.Context) ([]*Blog, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing blogs: %w", err)
	}

	var blogs []*Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decoding blogs: %w", err)
	}
	return blogs, nil
}

// GetByID returns a post by its id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Blog, error) {
	var b Blog
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying blog %s: %w", id.Hex(), err)
	}
	return &b, nil
}

// Update carries a partial post update. Array fields replace
// wholesale when set.
type Update struct {
	Name            *string
	Author          *string
	Description     *string
	Content         *string
	Category        *string
	Excerpt         *string
	Image           *string
	Date            *time.Time
	SubHeadings     *[]SubHeading
	Quotes          *[]string
	HighlightPoints *[]string
}

func (u Update) set(now time.Time) bson.M {
	m := bson.M{"updatedAt": now}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Author != nil {
		m["author"] = *u.Author
	}
	if u.Description != nil {
		m["description"] = *u.Description
	}
	if u.Content != nil {
		m["content"] = *u.Content
	}
	if u.Category != nil {
		m["category"] = *u.Category
	}
	if u.Excerpt != nil {
		m["excerpt"] = *u.Excerpt
	}
	if u.Image != nil {
		m["image"] = *u.Image
	}
	if u.Date != nil {
		m["date"] = *u.Date
	}
	if u.SubHeadings != nil {
		m["subHeadings"] = *u.SubHeadings
	}
	if u.Quotes != nil {
		m["quotes"] = *u.Quotes
	}
	if u.HighlightPoints != nil {
		m["highlightPoints"] = *u.HighlightPoints
	}
	return m
}

// Update applies a partial update and returns the updated post.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, u Update) (*Blog, error) {
	var b Blog
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": u.set(time.Now().UTC())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating blog %s: %w", id.Hex(), err)
	}
	return &b, nil
}

// Delete removes a post by id.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting blog %s: %w", id.Hex(), err)
	}
	return nil
}
