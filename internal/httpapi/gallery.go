package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/realtydesk/realty-api/internal/fields"
	"github.com/realtydesk/realty-api/internal/gallery"
	"github.com/realtydesk/realty-api/internal/upload"
	"github.com/realtydesk/realty-api/internal/validate"
)

func (s *Server) createGalleryItem(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	v := validate.Gallery{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}
	errs := validate.GalleryItem(v)

	files := form.File["images"]
	bodyImages := fields.List(form.Value["images"]).Split().Strings()
	if len(files) == 0 && len(bodyImages) == 0 {
		errs = append(errs, "At least one image is required")
	}
	if errs != nil {
		failValidation(c, errs)
		return
	}

	images := upload.NormalizePaths(bodyImages)
	if len(files) > 0 {
		paths, err := s.uploads.SaveAll(files, upload.Images)
		if err != nil {
			uploadFail(c, err, "Error creating gallery item")
			return
		}
		images = upload.NormalizePaths(paths)
	}

	g := &gallery.Gallery{
		Name:        strings.TrimSpace(v.Name),
		Description: strings.TrimSpace(v.Description),
		Images:      images,
	}

	out, err := s.st.Galleries.Insert(c.Request.Context(), g)
	if err != nil {
		failStore(c, "Error creating gallery item", err)
		return
	}
	respond(c, http.StatusCreated, "Gallery item created successfully", out)
}

func (s *Server) listGallery(c *gin.Context) {
	galleries, err := s.st.Galleries.List(c.Request.Context())
	if err != nil {
		failStore(c, "Error fetching gallery items", err)
		return
	}
	respondList(c, galleries, len(galleries))
}

func (s *Server) getGalleryItem(c *gin.Context) {
	id, ok := objectID(c, "Invalid gallery ID")
	if !ok {
		return
	}

	g, err := s.st.Galleries.GetByID(c.Request.Context(), id)
	if errors.Is(err, gallery.ErrNotFound) {
		fail(c, http.StatusNotFound, "Gallery item not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching gallery item", err)
		return
	}
	respond(c, http.StatusOK, "", g)
}

// updateGalleryItem replaces the image list only when new files are
// uploaded; text fields update independently.
func (s *Server) updateGalleryItem(c *gin.Context) {
	id, ok := objectID(c, "Invalid gallery ID")
	if !ok {
		return
	}

	u := gallery.Update{
		Name:        postForm(c, "name"),
		Description: postForm(c, "description"),
	}

	if form, err := c.MultipartForm(); err == nil {
		if files := form.File["images"]; len(files) > 0 {
			paths, err := s.uploads.SaveAll(files, upload.Images)
			if err != nil {
				uploadFail(c, err, "Error updating gallery item")
				return
			}
			images := upload.NormalizePaths(paths)
			u.Images = &images
		}
	}

	g, err := s.st.Galleries.Update(c.Request.Context(), id, u)
	if errors.Is(err, gallery.ErrNotFound) {
		fail(c, http.StatusNotFound, "Gallery item not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating gallery item", err)
		return
	}
	respond(c, http.StatusOK, "Gallery item updated successfully", g)
}

func (s *Server) deleteGalleryItem(c *gin.Context) {
	id, ok := objectID(c, "Invalid gallery ID")
	if !ok {
		return
	}

	err := s.st.Galleries.Delete(c.Request.Context(), id)
	if errors.Is(err, gallery.ErrNotFound) {
		fail(c, http.StatusNotFound, "Gallery item not found")
		return
	}
	if err != nil {
		failStore(c, "Error deleting gallery item", err)
		return
	}
	respond(c, http.StatusOK, "Gallery item deleted successfully", nil)
}
