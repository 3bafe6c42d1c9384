package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/realtydesk/realty-api/internal/contact"
	"github.com/realtydesk/realty-api/internal/validate"
)

type contactCreateReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *Server) createContact(c *gin.Context) {
	var req contactCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v := validate.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
	}
	if errs := validate.ContactForm(v); errs != nil {
		failValidation(c, errs)
		return
	}

	ct := &contact.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: req.Subject,
		Message: strings.TrimSpace(req.Message),
	}

	out, err := s.st.Contacts.Insert(c.Request.Context(), ct)
	if err != nil {
		failStore(c, "Error creating contact", err)
		return
	}
	respond(c, http.StatusCreated, "Contact created successfully", out)
}

func (s *Server) listContacts(c *gin.Context) {
	contacts, err := s.st.Contacts.List(c.Request.Context())
	if err != nil {
		failStore(c, "Error fetching contacts", err)
		return
	}
	respondList(c, contacts, len(contacts))
}

func (s *Server) getContact(c *gin.Context) {
	id, ok := objectID(c, "Invalid contact ID")
	if !ok {
		return
	}

	ct, err := s.st.Contacts.GetByID(c.Request.Context(), id)
	if errors.Is(err, contact.ErrNotFound) {
		fail(c, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching contact", err)
		return
	}
	respond(c, http.StatusOK, "", ct)
}

type contactUpdateReq struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

func (s *Server) updateContact(c *gin.Context) {
	id, ok := objectID(c, "Invalid contact ID")
	if !ok {
		return
	}

	var req contactUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u := contact.Update{
		Name:    trimmed(req.Name),
		Email:   trimmed(req.Email),
		Phone:   trimmed(req.Phone),
		Subject: req.Subject,
		Message: trimmed(req.Message),
	}

	ct, err := s.st.Contacts.Update(c.Request.Context(), id, u)
	if errors.Is(err, contact.ErrNotFound) {
		fail(c, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating contact", err)
		return
	}
	respond(c, http.StatusOK, "Contact updated successfully", ct)
}

func (s *Server) deleteContact(c *gin.Context) {
	id, ok := objectID(c, "Invalid contact ID")
	if !ok {
		return
	}

	err := s.st.Contacts.Delete(c.Request.Context(), id)
	if errors.Is(err, contact.ErrNotFound) {
		fail(c, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		failStore(c, "Error deleting contact", err)
		return
	}
	respond(c, http.StatusOK, "Contact deleted successfully", nil)
}
