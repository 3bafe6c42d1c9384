package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/realtydesk/realty-api/internal/fields"
	"github.com/realtydesk/realty-api/internal/inquiry"
	"github.com/realtydesk/realty-api/internal/validate"
)

type inquiryCreateReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`

	PropertyID           string     `json:"propertyId"`
	PropertyTitle        string     `json:"propertyTitle"`
	PropertyName         string     `json:"propertyName"`
	PropertyLocation     string     `json:"propertyLocation"`
	PropertyPrice        fields.Str `json:"propertyPrice"`
	PropertyTotalPrice   fields.Str `json:"propertyTotalPrice"`
	PropertyPricePerGaj  fields.Str `json:"propertyPricePerGaj"`
	PropertyGaj          fields.Str `json:"propertyGaj"`
	PropertyCategory     string     `json:"propertyCategory"`
	PropertyPlotCategory string     `json:"propertyPlotCategory"`
	PropertyImage        string     `json:"propertyImage"`
}

func (s *Server) createInquiry(c *gin.Context) {
	var req inquiryCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v := validate.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if errs := validate.InquiryForm(v); errs != nil {
		failValidation(c, errs)
		return
	}

	ov := inquiry.Overrides{
		Title:        req.PropertyTitle,
		Name:         req.PropertyName,
		Location:     req.PropertyLocation,
		Price:        looseNum(req.PropertyPrice),
		TotalPrice:   looseNum(req.PropertyTotalPrice),
		PricePerGaj:  looseNum(req.PropertyPricePerGaj),
		Gaj:          looseNum(req.PropertyGaj),
		Category:     req.PropertyCategory,
		PlotCategory: req.PropertyPlotCategory,
		Image:        req.PropertyImage,
	}
	propertyID, details := inquiry.Link(c.Request.Context(), s.st.Properties, req.PropertyID, ov)

	i := &inquiry.Inquiry{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    strings.TrimSpace(req.Message),
		PropertyID: propertyID,
		Details:    details,
	}

	out, err := s.st.Inquiries.Insert(c.Request.Context(), i)
	if err != nil {
		failStore(c, "Error creating inquiry", err)
		return
	}
	respond(c, http.StatusCreated, "Inquiry created successfully", out)
}

func (s *Server) listInquiries(c *gin.Context) {
	inquiries, err := s.st.Inquiries.List(c.Request.Context())
	if err != nil {
		failStore(c, "Error fetching inquiries", err)
		return
	}
	respondList(c, inquiries, len(inquiries))
}

func (s *Server) getInquiry(c *gin.Context) {
	id, ok := objectID(c, "Invalid inquiry ID")
	if !ok {
		return
	}

	i, err := s.st.Inquiries.GetByID(c.Request.Context(), id)
	if errors.Is(err, inquiry.ErrNotFound) {
		fail(c, http.StatusNotFound, "Inquiry not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching inquiry", err)
		return
	}
	respond(c, http.StatusOK, "", i)
}

type inquiryUpdateReq struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

func (s *Server) updateInquiry(c *gin.Context) {
	id, ok := objectID(c, "Invalid inquiry ID")
	if !ok {
		return
	}

	var req inquiryUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u := inquiry.Update{
		Name:    trimmed(req.Name),
		Email:   trimmed(req.Email),
		Phone:   trimmed(req.Phone),
		Message: trimmed(req.Message),
	}
	if req.Status != nil {
		if !inquiry.ValidStatus(*req.Status) {
			fail(c, http.StatusBadRequest, "Status must be New, Pending, Confirmed, or Rejected")
			return
		}
		st := inquiry.Status(*req.Status)
		u.Status = &st
	}

	i, err := s.st.Inquiries.Update(c.Request.Context(), id, u)
	if errors.Is(err, inquiry.ErrNotFound) {
		fail(c, http.StatusNotFound, "Inquiry not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating inquiry", err)
		return
	}
	respond(c, http.StatusOK, "Inquiry updated successfully", i)
}

func (s *Server) deleteInquiry(c *gin.Context) {
	id, ok := objectID(c, "Invalid inquiry ID")
	if !ok {
		return
	}

	err := s.st.Inquiries.Delete(c.Request.Context(), id)
	if errors.Is(err, inquiry.ErrNotFound) {
		fail(c, http.StatusNotFound, "Inquiry not found")
		return
	}
	if err != nil {
		failStore(c, "Error deleting inquiry", err)
		return
	}
	respond(c, http.StatusOK, "Inquiry deleted successfully", nil)
}

// looseNum reads a loose numeric field, zero when absent or unparseable.
func looseNum(s fields.Str) float64 {
	n, ok := s.Num()
	if !ok {
		return 0
	}
	return n
}
