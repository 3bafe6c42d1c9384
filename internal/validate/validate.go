// Package validate holds per-resource request validators. Each
// validator is a pure function over the request payload that runs
// every applicable check and returns the collected error messages in
// field order, or nil when the payload is acceptable.
package validate

import (
	"regexp"
	"strings"

	"github.com/realtydesk/realty-api/internal/fields"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)
)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone reports whether s looks like a phone number.
func Phone(s string) bool {
	return phoneRe.MatchString(s)
}

func tooShort(s string, min int) bool {
	return len(strings.TrimSpace(s)) < min
}

// ContactSubjects are the accepted contact form subjects.
var ContactSubjects = []string{"buying", "selling", "investment", "valuation", "other"}

// Contact is the contact form payload.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Subject string
}

// ContactForm validates a contact submission.
func ContactForm(c Contact) []string {
	var errs []string
	if tooShort(c.Name, 2) {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	if !Email(c.Email) {
		errs = append(errs, "Valid email is required")
	}
	if !Phone(c.Phone) {
		errs = append(errs, "Valid phone number is required")
	}
	if !contains(ContactSubjects, c.Subject) {
		errs = append(errs, "Valid subject is required")
	}
	return errs
}

// Inquiry is the inquiry submission payload.
type Inquiry struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// InquiryForm validates an inquiry submission.
func InquiryForm(i Inquiry) []string {
	var errs []string
	if tooShort(i.Name, 2) {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	if !Email(i.Email) {
		errs = append(errs, "Valid email is required")
	}
	if !Phone(i.Phone) {
		errs = append(errs, "Valid phone number is required")
	}
	if tooShort(i.Message, 10) {
		errs = append(errs, "Message must be at least 10 characters long")
	}
	return errs
}

// Blog is the blog post payload.
type Blog struct {
	Name        string
	Author      string
	Description string
	Content     string
}

// BlogPost validates a blog post.
func BlogPost(b Blog) []string {
	var errs []string
	if tooShort(b.Name, 3) {
		errs = append(errs, "Blog name must be at least 3 characters long")
	}
	if tooShort(b.Author, 2) {
		errs = append(errs, "Author name must be at least 2 characters long")
	}
	if tooShort(b.Description, 20) {
		errs = append(errs, "Description must be at least 20 characters long")
	}
	if tooShort(b.Content, 50) {
		errs = append(errs, "Content must be at least 50 characters long")
	}
	return errs
}

// Testimonial is the testimonial payload.
type Testimonial struct {
	Name   string
	Title  string
	Rating fields.Str
}

// TestimonialForm validates a testimonial.
func TestimonialForm(t Testimonial) []string {
	var errs []string
	if tooShort(t.Name, 2) {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	if tooShort(t.Title, 2) {
		errs = append(errs, "Title must be at least 2 characters long")
	}
	if n, ok := t.Rating.Num(); !ok || n < 1 || n > 5 {
		errs = append(errs, "Rating must be between 1 and 5")
	}
	return errs
}

// Property is the property listing payload. Numeric fields keep their
// raw form so "missing" and "not a number" both surface as errors.
type Property struct {
	Name             string
	PricePerGaj      fields.Str
	Gaj              fields.Str
	TotalPrice       fields.Str
	Location         string
	ShortDescription string
	Category         string
	FileCount        int
}

// PropertyListing validates a property create request.
func PropertyListing(p Property) []string {
	var errs []string
	if tooShort(p.Name, 3) {
		errs = append(errs, "Property name must be at least 3 characters long")
	}
	if n, ok := p.PricePerGaj.Num(); !ok || n <= 0 {
		errs = append(errs, "Valid price per Gaj is required (must be greater than 0)")
	}
	if n, ok := p.Gaj.Num(); !ok || n <= 0 {
		errs = append(errs, "Valid Gaj is required (must be greater than 0)")
	}
	if n, ok := p.TotalPrice.Num(); !ok || n <= 0 {
		errs = append(errs, "Valid total price is required (must be greater than 0)")
	}
	if tooShort(p.Location, 3) {
		errs = append(errs, "Location must be at least 3 characters long")
	}
	if tooShort(p.ShortDescription, 10) {
		errs = append(errs, "Short description must be at least 10 characters long")
	}
	if tooShort(p.Category, 2) {
		errs = append(errs, "Category is required")
	}
	if p.FileCount == 0 {
		errs = append(errs, "At least one image is required")
	}
	return errs
}

// Gallery is the gallery item payload.
type Gallery struct {
	Name        string
	Description string
}

// GalleryItem validates a gallery create request.
func GalleryItem(g Gallery) []string {
	var errs []string
	if tooShort(g.Name, 2) {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	if tooShort(g.Description, 10) {
		errs = append(errs, "Description must be at least 10 characters long")
	}
	return errs
}

// Register is the account registration payload.
type Register struct {
	Name     string
	Email    string
	Password string
}

// RegisterForm validates a registration request.
func RegisterForm(r Register) []string {
	var errs []string
	if tooShort(r.Name, 2) {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	if !Email(r.Email) {
		errs = append(errs, "Valid email is required")
	}
	if len(r.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters long")
	}
	return errs
}

// Login is the login payload.
type Login struct {
	Email    string
	Password string
}

// LoginForm validates a login request.
func LoginForm(l Login) []string {
	var errs []string
	if !Email(l.Email) {
		errs = append(errs, "Valid email is required")
	}
	if l.Password == "" {
		errs = append(errs, "Password is required")
	}
	return errs
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
