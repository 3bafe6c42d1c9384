package inquiry

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/realtydesk/realty-api/internal/property"
)

// Finder looks up the referenced property for snapshot building.
type Finder interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*property.Property, error)
}

// Overrides are the client-supplied property fields accompanying an
// inquiry. Zero values count as unset.
type Overrides struct {
	Title        string
	Name         string
	Location     string
	Price        float64
	TotalPrice   float64
	PricePerGaj  float64
	Gaj          float64
	Category     string
	PlotCategory string
	Image        string
}

// Link resolves propertyID and builds the denormalized snapshot for a
// new inquiry. When the property is found, its fields win and the
// overrides only fill values the record leaves empty. A failed or
// missing lookup degrades to the overrides alone: an inquiry is never
// rejected because the property lookup failed. The id is kept on the
// inquiry either way; orphaned references are tolerated.
func Link(ctx context.Context, finder Finder, propertyID string, ov Overrides) (*primitive.ObjectID, Details) {
	if propertyID == "" {
		return nil, ov.details()
	}

	id, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		slog.Warn("unparseable property id on inquiry", "propertyId", propertyID, "error", err)
		return nil, ov.details()
	}

	p, err := finder.GetByID(ctx, id)
	if err != nil {
		// Deliberate degradation: the snapshot falls back to the
		// client-supplied fields, lookup errors and missing
		// properties alike.
		slog.Error("property lookup failed for inquiry", "propertyId", propertyID, "error", err)
		return &id, ov.details()
	}

	d := Details{
		Name:         firstStr(p.Name, ov.Title, ov.Name),
		Title:        firstStr(p.Name, ov.Title, ov.Name),
		Location:     firstStr(p.Location, ov.Location),
		Price:        firstNum(p.Price, ov.Price),
		TotalPrice:   firstNum(p.TotalPrice, ov.TotalPrice, p.Price, ov.Price),
		PricePerGaj:  firstNum(p.PricePerGaj, ov.PricePerGaj),
		Gaj:          firstNum(p.Gaj, ov.Gaj),
		Category:     firstStr(p.Category, ov.Category),
		PlotCategory: firstStr(p.Category, ov.PlotCategory),
		Image:        ov.Image,
	}
	if len(p.Images) > 0 {
		d.Image = p.Images[0]
	}
	return &id, d
}

// details builds the snapshot from overrides alone, with no
// property-side fallback.
func (ov Overrides) details() Details {
	return Details{
		Name:         firstStr(ov.Title, ov.Name),
		Title:        firstStr(ov.Title, ov.Name),
		Location:     ov.Location,
		Price:        firstNum(ov.Price),
		TotalPrice:   firstNum(ov.TotalPrice, ov.Price),
		PricePerGaj:  firstNum(ov.PricePerGaj),
		Gaj:          firstNum(ov.Gaj),
		Category:     ov.Category,
		PlotCategory: ov.PlotCategory,
		Image:        ov.Image,
	}
}

func firstStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNum(vals ...float64) *float64 {
	for _, v := range vals {
		if v != 0 {
			v := v
			return &v
		}
	}
	return nil
}
