// Package blog provides the blog post domain model and data access.
package blog

import (
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// excerptLen is how much of the description becomes the default excerpt.
const excerptLen = 200

// SubHeading is a titled section inside a post body.
type SubHeading struct {
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}

// Blog represents a published post.
type Blog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	Author          string             `bson:"author" json:"author"`
	Description     string             `bson:"description" json:"description"`
	Content         string             `bson:"content" json:"content"`
	Image           string             `bson:"image" json:"image"`
	Category        string             `bson:"category" json:"category"`
	Date            time.Time          `bson:"date" json:"date"`
	Excerpt         string             `bson:"excerpt" json:"excerpt"`
	SubHeadings     []SubHeading       `bson:"subHeadings" json:"subHeadings"`
	Quotes          []string           `bson:"quotes" json:"quotes"`
	HighlightPoints []string           `bson:"highlightPoints" json:"highlightPoints"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (b *Blog) prePersist(now time.Time) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Date.IsZero() {
		b.Date = now
	}
	if b.Excerpt == "" {
		b.Excerpt = defaultExcerpt(b.Description)
	}
	if b.SubHeadings == nil {
		b.SubHeadings = []SubHeading{}
	}
	if b.Quotes == nil {
		b.Quotes = []string{}
	}
	if b.HighlightPoints == nil {
		b.HighlightPoints = []string{}
	}
}

// defaultExcerpt takes the first 200 characters of the description.
func defaultExcerpt(description string) string {
	runes := []rune(strings.TrimSpace(description))
	if len(runes) <= excerptLen {
		return string(runes)
	}
	return string(runes[:excerptLen])
}

// ParseSubHeadings parses a JSON-encoded subheading list. Anything
// unparseable yields an empty list; entries with neither title nor
// content are dropped.
func ParseSubHeadings(raw string) []SubHeading {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var items []SubHeading
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return filterSubHeadings(items)
}

func filterSubHeadings(items []SubHeading) []SubHeading {
	var out []SubHeading
	for _, sh := range items {
		if sh.Title != "" || sh.Content != "" {
			out = append(out, sh)
		}
	}
	return out
}

// SubHeadingList decodes either a native array or a JSON-encoded
// string of subheadings.
type SubHeadingList []SubHeading

// UnmarshalJSON implements json.Unmarshaler.
func (l *SubHeadingList) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, "[") {
		var items []SubHeading
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = filterSubHeadings(items)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*l = ParseSubHeadings(s)
	return nil
}
