package httpapi

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/realtydesk/realty-api/internal/property"
)

type fakePropertyStore struct {
	byID    map[primitive.ObjectID]*property.Property
	listed  []*property.Property
	lastOps property.ListOptions
	deleted []primitive.ObjectID
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{byID: map[primitive.ObjectID]*property.Property{}}
}

func (f *fakePropertyStore) Insert(_ context.Context, p *property.Property) (*property.Property, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakePropertyStore) List(_ context.Context, opts property.ListOptions) ([]*property.Property, error) {
	f.lastOps = opts
	return f.listed, nil
}

func (f *fakePropertyStore) GetByID(_ context.Context, id primitive.ObjectID) (*property.Property, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, property.ErrNotFound
	}
	return p, nil
}

func (f *fakePropertyStore) Update(_ context.Context, id primitive.ObjectID, _ property.Update) (*property.Property, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, property.ErrNotFound
	}
	return p, nil
}

func (f *fakePropertyStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.byID[id]; !ok {
		return property.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func TestCreatePropertyValidationFailure(t *testing.T) {
	s := testServer(t, Stores{Properties: newFakePropertyStore()})

	w := doForm(t, s, http.MethodPost, "/api/properties/createProperty", map[string]string{
		"name": "ok name",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	env := decodeEnvelope(t, w)
	if env.Success {
		t.Error("success = true, want false")
	}
	if len(env.Errors) == 0 {
		t.Fatal("expected validation errors")
	}
	found := false
	for _, e := range env.Errors {
		if e == "At least one image is required" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, want image requirement included", env.Errors)
	}
}

func TestGetPropertyInvalidID(t *testing.T) {
	s := testServer(t, Stores{Properties: newFakePropertyStore()})

	w := doJSON(t, s, http.MethodGet, "/api/properties/short", nil, "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if env := decodeEnvelope(t, w); env.Message != "Invalid property ID" {
		t.Errorf("message = %q, want %q", env.Message, "Invalid property ID")
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	s := testServer(t, Stores{Properties: newFakePropertyStore()})

	w := doJSON(t, s, http.MethodGet, "/api/properties/"+primitive.NewObjectID().Hex(), nil, "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if env := decodeEnvelope(t, w); env.Message != "Property not found" {
		t.Errorf("message = %q, want %q", env.Message, "Property not found")
	}
}

func TestListPropertiesCountAndFilters(t *testing.T) {
	fake := newFakePropertyStore()
	fake.listed = []*property.Property{
		{ID: primitive.NewObjectID(), Name: "Plot A"},
		{ID: primitive.NewObjectID(), Name: "Plot B"},
	}
	s := testServer(t, Stores{Properties: fake})

	w := doJSON(t, s, http.MethodGet, "/api/properties?category=residential&minPrice=100&maxPrice=500", nil, "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	env := decodeEnvelope(t, w)
	if env.Count == nil || *env.Count != 2 {
		t.Errorf("count = %v, want 2", env.Count)
	}

	if fake.lastOps.Category != "residential" {
		t.Errorf("category filter = %q, want residential", fake.lastOps.Category)
	}
	if fake.lastOps.MinPrice == nil || *fake.lastOps.MinPrice != 100 {
		t.Errorf("minPrice filter = %v, want 100", fake.lastOps.MinPrice)
	}
	if fake.lastOps.MaxPrice == nil || *fake.lastOps.MaxPrice != 500 {
		t.Errorf("maxPrice filter = %v, want 500", fake.lastOps.MaxPrice)
	}
}

func TestDeleteProperty(t *testing.T) {
	fake := newFakePropertyStore()
	id := primitive.NewObjectID()
	fake.byID[id] = &property.Property{ID: id, Name: "Plot A"}
	s := testServer(t, Stores{Properties: fake})

	w := doJSON(t, s, http.MethodDelete, "/api/properties/"+id.Hex(), nil, "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if env := decodeEnvelope(t, w); env.Message != "Property deleted successfully" {
		t.Errorf("message = %q", env.Message)
	}
	if len(fake.deleted) != 1 || fake.deleted[0] != id {
		t.Errorf("deleted = %v, want [%s]", fake.deleted, id.Hex())
	}
}
