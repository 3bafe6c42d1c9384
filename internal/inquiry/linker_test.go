package inquiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/realtydesk/realty-api/internal/property"
)

type fakeFinder struct {
	props map[primitive.ObjectID]*property.Property
	err   error
}

func (f *fakeFinder) GetByID(_ context.Context, id primitive.ObjectID) (*property.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.props[id]
	if !ok {
		return nil, property.ErrNotFound
	}
	return p, nil
}

func storedProperty(id primitive.ObjectID) *property.Property {
	return &property.Property{
		ID:          id,
		Name:        "Green Valley Plots",
		Price:       5000000,
		PricePerGaj: 12000,
		Gaj:         417,
		TotalPrice:  5000000,
		Location:    "Sector 45",
		Category:    "residential",
		Images:      []string{"/uploads/a.jpg", "/uploads/b.jpg"},
	}
}

func TestLinkPrefersAuthoritativeProperty(t *testing.T) {
	id := primitive.NewObjectID()
	finder := &fakeFinder{props: map[primitive.ObjectID]*property.Property{id: storedProperty(id)}}

	// Conflicting overrides must lose to the stored record.
	ov := Overrides{
		Title:      "Client Made Up Name",
		Location:   "Elsewhere",
		TotalPrice: 1,
		Image:      "client.jpg",
	}

	gotID, d := Link(context.Background(), finder, id.Hex(), ov)

	if gotID == nil || *gotID != id {
		t.Fatalf("propertyId = %v, want %s", gotID, id.Hex())
	}
	if d.Name != "Green Valley Plots" || d.Title != "Green Valley Plots" {
		t.Errorf("name/title = %q/%q, want property name", d.Name, d.Title)
	}
	if d.Location != "Sector 45" {
		t.Errorf("location = %q, want property location", d.Location)
	}
	if d.TotalPrice == nil || *d.TotalPrice != 5000000 {
		t.Errorf("totalPrice = %v, want 5000000", d.TotalPrice)
	}
	if d.Image != "/uploads/a.jpg" {
		t.Errorf("image = %q, want first property image", d.Image)
	}
}

func TestLinkOverridesFillGaps(t *testing.T) {
	id := primitive.NewObjectID()
	p := &property.Property{ID: id, Name: "Bare Plot"} // everything else empty
	finder := &fakeFinder{props: map[primitive.ObjectID]*property.Property{id: p}}

	ov := Overrides{
		Location:    "Sector 9",
		TotalPrice:  750000,
		PricePerGaj: 5000,
		Gaj:         150,
		Category:    "commercial",
		Image:       "fallback.jpg",
	}

	_, d := Link(context.Background(), finder, id.Hex(), ov)

	if d.Name != "Bare Plot" {
		t.Errorf("name = %q, want property name", d.Name)
	}
	if d.Location != "Sector 9" {
		t.Errorf("location = %q, want override", d.Location)
	}
	if d.TotalPrice == nil || *d.TotalPrice != 750000 {
		t.Errorf("totalPrice = %v, want override", d.TotalPrice)
	}
	if d.Image != "fallback.jpg" {
		t.Errorf("image = %q, want override when property has no images", d.Image)
	}
}

func TestLinkTotalPriceFallsBackToPrice(t *testing.T) {
	id := primitive.NewObjectID()
	p := &property.Property{ID: id, Name: "Priced Plot", Price: 320000}
	finder := &fakeFinder{props: map[primitive.ObjectID]*property.Property{id: p}}

	_, d := Link(context.Background(), finder, id.Hex(), Overrides{})

	if d.TotalPrice == nil || *d.TotalPrice != 320000 {
		t.Errorf("totalPrice = %v, want property price fallback", d.TotalPrice)
	}
}

func TestLinkDegradesOnLookupError(t *testing.T) {
	id := primitive.NewObjectID()
	finder := &fakeFinder{err: errors.New("store down")}

	ov := Overrides{Title: "Client Title", TotalPrice: 900000, Image: "client.jpg"}
	gotID, d := Link(context.Background(), finder, id.Hex(), ov)

	if gotID == nil || *gotID != id {
		t.Fatalf("propertyId = %v, want kept despite lookup failure", gotID)
	}
	if d.Name != "Client Title" || d.Title != "Client Title" {
		t.Errorf("name/title = %q/%q, want overrides", d.Name, d.Title)
	}
	if d.TotalPrice == nil || *d.TotalPrice != 900000 {
		t.Errorf("totalPrice = %v, want override", d.TotalPrice)
	}
	if d.Image != "client.jpg" {
		t.Errorf("image = %q, want override", d.Image)
	}
}

func TestLinkDegradesOnMissingProperty(t *testing.T) {
	finder := &fakeFinder{props: map[primitive.ObjectID]*property.Property{}}

	id := primitive.NewObjectID()
	gotID, d := Link(context.Background(), finder, id.Hex(), Overrides{Name: "From Client"})

	if gotID == nil || *gotID != id {
		t.Fatalf("propertyId = %v, want kept for missing property", gotID)
	}
	if d.Name != "From Client" {
		t.Errorf("name = %q, want override", d.Name)
	}
}

func TestLinkWithoutPropertyID(t *testing.T) {
	finder := &fakeFinder{}

	ov := Overrides{Name: "Standalone", Price: 100000}
	gotID, d := Link(context.Background(), finder, "", ov)

	if gotID != nil {
		t.Errorf("propertyId = %v, want nil", gotID)
	}
	if d.Name != "Standalone" || d.Title != "Standalone" {
		t.Errorf("name/title = %q/%q, want override name", d.Name, d.Title)
	}
	if d.TotalPrice == nil || *d.TotalPrice != 100000 {
		t.Errorf("totalPrice = %v, want price fallback", d.TotalPrice)
	}
}

func TestLinkUnparseableID(t *testing.T) {
	finder := &fakeFinder{}

	gotID, d := Link(context.Background(), finder, "zzzzzzzzzzzzzzzzzzzzzzzz", Overrides{Name: "X"})

	if gotID != nil {
		t.Errorf("propertyId = %v, want nil for unparseable hex", gotID)
	}
	if d.Name != "X" {
		t.Errorf("name = %q, want override", d.Name)
	}
}

func TestLinkTitleBeatsNameInOverrides(t *testing.T) {
	finder := &fakeFinder{}

	_, d := Link(context.Background(), finder, "", Overrides{Title: "Title Wins", Name: "Name Loses"})
	if d.Name != "Title Wins" {
		t.Errorf("name = %q, want title preferred", d.Name)
	}
}

func TestPrePersistDefaults(t *testing.T) {
	i := &Inquiry{Name: "Ravi"}
	i.prePersist(time.Now().UTC())

	if i.Status != StatusNew {
		t.Errorf("status = %q, want New", i.Status)
	}
	if i.ID.IsZero() {
		t.Error("expected generated id")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"New", "Pending", "Confirmed", "Rejected"} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"new", "Open", ""} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
