package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/realtydesk/realty-api/internal/fields"
	"github.com/realtydesk/realty-api/internal/property"
	"github.com/realtydesk/realty-api/internal/upload"
	"github.com/realtydesk/realty-api/internal/validate"
)

func (s *Server) createProperty(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	files := form.File["images"]

	v := validate.Property{
		Name:             c.PostForm("name"),
		PricePerGaj:      fields.Str(c.PostForm("pricePerGaj")),
		Gaj:              fields.Str(c.PostForm("Gaj")),
		TotalPrice:       fields.Str(c.PostForm("totalPrice")),
		Location:         c.PostForm("location"),
		ShortDescription: c.PostForm("shortDescription"),
		Category:         c.PostForm("category"),
		FileCount:        len(files),
	}
	if errs := validate.PropertyListing(v); errs != nil {
		failValidation(c, errs)
		return
	}

	paths, err := s.uploads.SaveAll(files, upload.Images)
	if err != nil {
		uploadFail(c, err, "Error creating property")
		return
	}

	pricePerGaj, _ := v.PricePerGaj.Num()
	gaj, _ := v.Gaj.Num()
	totalPrice, _ := v.TotalPrice.Num()

	p := &property.Property{
		Name:             strings.TrimSpace(v.Name),
		PricePerGaj:      pricePerGaj,
		Gaj:              gaj,
		TotalPrice:       totalPrice,
		Location:         strings.TrimSpace(v.Location),
		ShortDescription: strings.TrimSpace(v.ShortDescription),
		Category:         strings.TrimSpace(v.Category),
		Features:         fields.List(form.Value["features"]).Split().Strings(),
		Images:           upload.NormalizePaths(paths),
	}

	out, err := s.st.Properties.Insert(c.Request.Context(), p)
	if err != nil {
		failStore(c, "Error creating property", err)
		return
	}
	respond(c, http.StatusCreated, "Property created successfully", out)
}

func (s *Server) listProperties(c *gin.Context) {
	opts := property.ListOptions{
		Category: c.Query("category"),
		Location: c.Query("location"),
		MinPrice: queryFloat(c, "minPrice"),
		MaxPrice: queryFloat(c, "maxPrice"),
	}

	properties, err := s.st.Properties.List(c.Request.Context(), opts)
	if err != nil {
		failStore(c, "Error fetching properties", err)
		return
	}
	respondList(c, properties, len(properties))
}

func (s *Server) getProperty(c *gin.Context) {
	id, ok := objectID(c, "Invalid property ID")
	if !ok {
		return
	}

	p, err := s.st.Properties.GetByID(c.Request.Context(), id)
	if errors.Is(err, property.ErrNotFound) {
		fail(c, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching property", err)
		return
	}
	respond(c, http.StatusOK, "", p)
}

type propertyUpdateReq struct {
	Name             *string      `json:"name"`
	Location         *string      `json:"location"`
	ShortDescription *string      `json:"shortDescription"`
	Category         *string      `json:"category"`
	PricePerGaj      *fields.Str  `json:"pricePerGaj"`
	Gaj              *fields.Str  `json:"Gaj"`
	TotalPrice       *fields.Str  `json:"totalPrice"`
	Features         *fields.List `json:"features"`
	Images           *fields.List `json:"images"`
}

func (s *Server) updateProperty(c *gin.Context) {
	id, ok := objectID(c, "Invalid property ID")
	if !ok {
		return
	}

	var u property.Update
	if isMultipart(c) {
		var parseErr bool
		u, parseErr = s.propertyUpdateFromForm(c)
		if parseErr {
			return
		}
	} else {
		var req propertyUpdateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		u = property.Update{
			Name:             trimmed(req.Name),
			Location:         trimmed(req.Location),
			ShortDescription: trimmed(req.ShortDescription),
			Category:         trimmed(req.Category),
			PricePerGaj:      numOf(req.PricePerGaj),
			Gaj:              numOf(req.Gaj),
			TotalPrice:       numOf(req.TotalPrice),
		}
		if req.Features != nil {
			features := req.Features.Split().Strings()
			u.Features = &features
		}
		if req.Images != nil {
			images := upload.NormalizePaths(req.Images.Strings())
			u.Images = &images
		}
	}

	p, err := s.st.Properties.Update(c.Request.Context(), id, u)
	if errors.Is(err, property.ErrNotFound) {
		fail(c, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating property", err)
		return
	}
	respond(c, http.StatusOK, "Property updated successfully", p)
}

// propertyUpdateFromForm builds the update from a multipart request.
// Freshly uploaded files replace the image list; otherwise a body
// images field, when present, is normalized and used.
func (s *Server) propertyUpdateFromForm(c *gin.Context) (property.Update, bool) {
	var u property.Update

	form, err := c.MultipartForm()
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid form data")
		return u, true
	}

	u.Name = postForm(c, "name")
	u.Location = postForm(c, "location")
	u.ShortDescription = postForm(c, "shortDescription")
	u.Category = postForm(c, "category")
	u.PricePerGaj = postFormFloat(c, "pricePerGaj")
	u.Gaj = postFormFloat(c, "Gaj")
	u.TotalPrice = postFormFloat(c, "totalPrice")

	if files := form.File["images"]; len(files) > 0 {
		paths, err := s.uploads.SaveAll(files, upload.Images)
		if err != nil {
			uploadFail(c, err, "Error updating property")
			return u, true
		}
		images := upload.NormalizePaths(paths)
		u.Images = &images
	} else if raw, ok := form.Value["images"]; ok {
		images := upload.NormalizePaths(fields.List(raw).Split().Strings())
		u.Images = &images
	}

	if raw, ok := form.Value["features"]; ok {
		features := fields.List(raw).Split().Strings()
		u.Features = &features
	}
	return u, false
}

func (s *Server) deleteProperty(c *gin.Context) {
	id, ok := objectID(c, "Invalid property ID")
	if !ok {
		return
	}

	err := s.st.Properties.Delete(c.Request.Context(), id)
	if errors.Is(err, property.ErrNotFound) {
		fail(c, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		failStore(c, "Error deleting property", err)
		return
	}
	respond(c, http.StatusOK, "Property deleted successfully", nil)
}

// uploadFail maps gateway sentinels onto 400; anything else is a
// server-side failure.
func uploadFail(c *gin.Context, err error, storeMsg string) {
	switch {
	case errors.Is(err, upload.ErrInvalidType),
		errors.Is(err, upload.ErrFileTooLarge),
		errors.Is(err, upload.ErrTooManyFiles):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		failStore(c, storeMsg, err)
	}
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func queryFloat(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &n
}

// postForm returns a pointer to the trimmed field value, nil when the
// field is absent from the form.
func postForm(c *gin.Context, key string) *string {
	raw, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	v := strings.TrimSpace(raw)
	return &v
}

func postFormFloat(c *gin.Context, key string) *float64 {
	raw, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &n
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// numOf converts a loose numeric field to a float pointer, dropping
// unparseable values.
func numOf(s *fields.Str) *float64 {
	if s == nil {
		return nil
	}
	n, ok := s.Num()
	if !ok {
		return nil
	}
	return &n
}
