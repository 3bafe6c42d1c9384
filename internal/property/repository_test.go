package property

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestPrePersistDerivesPrice(t *testing.T) {
	now := time.Now().UTC()

	p := &Property{Name: "Plot A", TotalPrice: 5000000}
	p.prePersist(now)

	if p.Price != 5000000 {
		t.Errorf("price = %v, want derived from totalPrice", p.Price)
	}
	if p.ID.IsZero() {
		t.Error("expected generated id")
	}
	if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
		t.Error("expected timestamps set")
	}
	if p.Features == nil {
		t.Error("expected features defaulted to empty list")
	}
}

func TestPrePersistKeepsExplicitPrice(t *testing.T) {
	p := &Property{Price: 4200000, TotalPrice: 5000000}
	p.prePersist(time.Now().UTC())

	if p.Price != 4200000 {
		t.Errorf("price = %v, want explicit value kept", p.Price)
	}
}

func TestListOptionsFilter(t *testing.T) {
	min := 100000.0
	max := 900000.0

	tests := []struct {
		name string
		opts ListOptions
		want bson.M
	}{
		{"empty", ListOptions{}, bson.M{}},
		{
			"category",
			ListOptions{Category: "residential"},
			bson.M{"category": bson.M{"$regex": "residential", "$options": "i"}},
		},
		{
			"location",
			ListOptions{Location: "sector"},
			bson.M{"location": bson.M{"$regex": "sector", "$options": "i"}},
		},
		{
			"price range",
			ListOptions{MinPrice: &min, MaxPrice: &max},
			bson.M{"totalPrice": bson.M{"$gte": min, "$lte": max}},
		},
		{
			"min only",
			ListOptions{MinPrice: &min},
			bson.M{"totalPrice": bson.M{"$gte": min}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.filter(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateSetPartial(t *testing.T) {
	name := "Renamed Plot"
	u := Update{Name: &name}

	now := time.Now().UTC()
	m := u.set(now)

	if m["name"] != name {
		t.Errorf("name = %v, want %q", m["name"], name)
	}
	if _, ok := m["location"]; ok {
		t.Error("unset field must not appear in $set document")
	}
	if m["updatedAt"] != now {
		t.Error("expected updatedAt in every update")
	}
}

func TestUpdateSetTotalPriceCarriesPrice(t *testing.T) {
	total := 7500000.0
	m := Update{TotalPrice: &total}.set(time.Now().UTC())

	if m["totalPrice"] != total {
		t.Errorf("totalPrice = %v, want %v", m["totalPrice"], total)
	}
	if m["price"] != total {
		t.Errorf("price = %v, want kept in step with totalPrice", m["price"])
	}
}

func TestUpdateSetReplacesArraysWholesale(t *testing.T) {
	empty := []string{}
	m := Update{Features: &empty}.set(time.Now().UTC())

	got, ok := m["features"].([]string)
	if !ok {
		t.Fatalf("features missing from $set document")
	}
	if len(got) != 0 {
		t.Errorf("features = %v, want explicit empty replacement", got)
	}
}
