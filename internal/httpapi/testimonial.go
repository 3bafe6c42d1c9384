package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/realtydesk/realty-api/internal/fields"
	"github.com/realtydesk/realty-api/internal/testimonial"
	"github.com/realtydesk/realty-api/internal/upload"
	"github.com/realtydesk/realty-api/internal/validate"
)

func (s *Server) createTestimonial(c *gin.Context) {
	v := validate.Testimonial{
		Name:   c.PostForm("name"),
		Title:  c.PostForm("title"),
		Rating: fields.Str(c.PostForm("rating")),
	}
	text := c.PostForm("text")

	errs := validate.TestimonialForm(v)
	if strings.TrimSpace(text) == "" {
		errs = append(errs, "Name, title, text, and rating are required")
	}

	image := strings.TrimSpace(c.PostForm("image"))
	fh, fileErr := c.FormFile("image")
	if fileErr != nil && image == "" {
		errs = append(errs, "Image is required")
	}
	if errs != nil {
		failValidation(c, errs)
		return
	}

	if fileErr == nil {
		path, err := s.uploads.Save(fh, upload.Images)
		if err != nil {
			uploadFail(c, err, "Error creating testimonial")
			return
		}
		image = path
	}

	t := &testimonial.Testimonial{
		Name:   strings.TrimSpace(v.Name),
		Title:  strings.TrimSpace(v.Title),
		Text:   strings.TrimSpace(text),
		Rating: v.Rating,
		Image:  upload.NormalizePath(image),
	}

	out, err := s.st.Testimonials.Insert(c.Request.Context(), t)
	if err != nil {
		failStore(c, "Error creating testimonial", err)
		return
	}
	respond(c, http.StatusCreated, "Testimonial created successfully", out)
}

func (s *Server) listTestimonials(c *gin.Context) {
	testimonials, err := s.st.Testimonials.List(c.Request.Context(), false)
	if err != nil {
		failStore(c, "Error fetching testimonials", err)
		return
	}
	respondList(c, testimonials, len(testimonials))
}

func (s *Server) getTestimonial(c *gin.Context) {
	id, ok := objectID(c, "Invalid testimonial ID")
	if !ok {
		return
	}

	t, err := s.st.Testimonials.GetByID(c.Request.Context(), id)
	if errors.Is(err, testimonial.ErrNotFound) {
		fail(c, http.StatusNotFound, "Testimonial not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching testimonial", err)
		return
	}
	respond(c, http.StatusOK, "", t)
}

func (s *Server) updateTestimonial(c *gin.Context) {
	id, ok := objectID(c, "Invalid testimonial ID")
	if !ok {
		return
	}

	u := testimonial.Update{
		Name:  postForm(c, "name"),
		Title: postForm(c, "title"),
		Text:  postForm(c, "text"),
	}

	if raw, present := c.GetPostForm("rating"); present {
		rating := fields.Str(raw)
		if n, numOK := rating.Num(); !numOK || n < 1 || n > 5 {
			fail(c, http.StatusBadRequest, "Rating must be between 1 and 5")
			return
		}
		u.Rating = &rating
	}
	if raw, present := c.GetPostForm("status"); present {
		st := testimonial.Status(raw)
		if !testimonial.ValidStatus(st) {
			fail(c, http.StatusBadRequest, "Status must be pending, approved, or declined")
			return
		}
		u.Status = &st
	}
	if fh, err := c.FormFile("image"); err == nil {
		path, err := s.uploads.Save(fh, upload.Images)
		if err != nil {
			uploadFail(c, err, "Error updating testimonial")
			return
		}
		img := upload.NormalizePath(path)
		u.Image = &img
	}

	t, err := s.st.Testimonials.Update(c.Request.Context(), id, u)
	if errors.Is(err, testimonial.ErrNotFound) {
		fail(c, http.StatusNotFound, "Testimonial not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating testimonial", err)
		return
	}
	respond(c, http.StatusOK, "Testimonial updated successfully", t)
}

func (s *Server) deleteTestimonial(c *gin.Context) {
	id, ok := objectID(c, "Invalid testimonial ID")
	if !ok {
		return
	}

	err := s.st.Testimonials.Delete(c.Request.Context(), id)
	if errors.Is(err, testimonial.ErrNotFound) {
		fail(c, http.StatusNotFound, "Testimonial not found")
		return
	}
	if err != nil {
		failStore(c, "Error deleting testimonial", err)
		return
	}
	respond(c, http.StatusOK, "Testimonial deleted successfully", nil)
}
