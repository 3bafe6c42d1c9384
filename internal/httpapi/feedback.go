package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/realtydesk/realty-api/internal/feedback"
	"github.com/realtydesk/realty-api/internal/fields"
	"github.com/realtydesk/realty-api/internal/validate"
)

type feedbackCreateReq struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Rating  fields.Str `json:"rating"`
	Message string     `json:"message"`
}

func (s *Server) createFeedback(c *gin.Context) {
	var req feedbackCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if !validate.Email(req.Email) {
		errs = append(errs, "Valid email is required")
	}
	rating, ratingOK := req.Rating.Num()
	if !ratingOK || rating < 1 || rating > 5 {
		errs = append(errs, "Rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Message) == "" {
		errs = append(errs, "Message is required")
	}
	if errs != nil {
		failValidation(c, errs)
		return
	}

	f := &feedback.Feedback{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Rating:  int(rating),
		Message: strings.TrimSpace(req.Message),
	}

	out, err := s.st.Feedback.Insert(c.Request.Context(), f)
	if err != nil {
		failStore(c, "Error creating feedback", err)
		return
	}
	respond(c, http.StatusCreated, "Feedback created successfully", out)
}

func (s *Server) listApprovedFeedback(c *gin.Context) {
	s.listFeedback(c, true)
}

func (s *Server) listAllFeedback(c *gin.Context) {
	s.listFeedback(c, false)
}

func (s *Server) listFeedback(c *gin.Context, onlyApproved bool) {
	entries, err := s.st.Feedback.List(c.Request.Context(), onlyApproved)
	if err != nil {
		failStore(c, "Error fetching feedbacks", err)
		return
	}
	respondList(c, entries, len(entries))
}

func (s *Server) getFeedback(c *gin.Context) {
	id, ok := objectID(c, "Invalid feedback ID")
	if !ok {
		return
	}

	f, err := s.st.Feedback.GetByID(c.Request.Context(), id)
	if errors.Is(err, feedback.ErrNotFound) {
		fail(c, http.StatusNotFound, "Feedback not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching feedback", err)
		return
	}
	respond(c, http.StatusOK, "", f)
}

type feedbackUpdateReq struct {
	Name    *string     `json:"name"`
	Email   *string     `json:"email"`
	Rating  *fields.Str `json:"rating"`
	Message *string     `json:"message"`
	Status  *string     `json:"status"`
}

func (s *Server) updateFeedback(c *gin.Context) {
	id, ok := objectID(c, "Invalid feedback ID")
	if !ok {
		return
	}

	var req feedbackUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u := feedback.Update{
		Name:    trimmed(req.Name),
		Message: trimmed(req.Message),
	}
	if req.Email != nil {
		if !validate.Email(*req.Email) {
			fail(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		u.Email = &email
	}
	if req.Rating != nil {
		n, numOK := req.Rating.Num()
		if !numOK || n < 1 || n > 5 {
			fail(c, http.StatusBadRequest, "Rating must be between 1 and 5")
			return
		}
		rating := int(n)
		u.Rating = &rating
	}
	if req.Status != nil {
		st := feedback.Status(*req.Status)
		if !feedback.ValidStatus(st) {
			fail(c, http.StatusBadRequest, "Status must be pending, approved, or declined")
			return
		}
		u.Status = &st
	}

	f, err := s.st.Feedback.Update(c.Request.Context(), id, u)
	if errors.Is(err, feedback.ErrNotFound) {
		fail(c, http.StatusNotFound, "Feedback not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating feedback", err)
		return
	}
	respond(c, http.StatusOK, "Feedback updated successfully", f)
}

type feedbackStatusReq struct {
	Status string `json:"status"`
}

func (s *Server) updateFeedbackStatus(c *gin.Context) {
	id, ok := objectID(c, "Invalid feedback ID")
	if !ok {
		return
	}

	var req feedbackStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	st := feedback.Status(req.Status)
	if !feedback.ValidStatus(st) {
		fail(c, http.StatusBadRequest, "Status must be pending, approved, or declined")
		return
	}

	f, err := s.st.Feedback.SetStatus(c.Request.Context(), id, st)
	if errors.Is(err, feedback.ErrNotFound) {
		fail(c, http.StatusNotFound, "Feedback not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating feedback status", err)
		return
	}
	respond(c, http.StatusOK, "Feedback status updated successfully", f)
}

func (s *Server) deleteFeedback(c *gin.Context) {
	id, ok := objectID(c, "Invalid feedback ID")
	if !ok {
		return
	}

	err := s.st.Feedback.Delete(c.Request.Context(), id)
	if errors.Is(err, feedback.ErrNotFound) {
		fail(c, http.StatusNotFound, "Feedback not found")
		return
	}
	if err != nil {
		failStore(c, "Error deleting feedback", err)
		return
	}
	respond(c, http.StatusOK, "Feedback deleted successfully", nil)
}
