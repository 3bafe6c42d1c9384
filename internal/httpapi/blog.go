package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/realtydesk/realty-api/internal/blog"
	"github.com/realtydesk/realty-api/internal/fields"
	"github.com/realtydesk/realty-api/internal/upload"
	"github.com/realtydesk/realty-api/internal/validate"
)

type blogCreateReq struct {
	Name            string              `json:"name"`
	Author          string              `json:"author"`
	Description     string              `json:"description"`
	Content         string              `json:"content"`
	Image           string              `json:"image"`
	Category        string              `json:"category"`
	Date            string              `json:"date"`
	Excerpt         string              `json:"excerpt"`
	SubHeadings     blog.SubHeadingList `json:"subHeadings"`
	Quotes          fields.List         `json:"quotes"`
	HighlightPoints fields.List         `json:"highlightPoints"`
}

func (s *Server) createBlog(c *gin.Context) {
	var req blogCreateReq
	if isMultipart(c) {
		req = blogCreateReq{
			Name:            c.PostForm("name"),
			Author:          c.PostForm("author"),
			Description:     c.PostForm("description"),
			Content:         c.PostForm("content"),
			Image:           c.PostForm("image"),
			Category:        c.PostForm("category"),
			Date:            c.PostForm("date"),
			Excerpt:         c.PostForm("excerpt"),
			SubHeadings:     blog.ParseSubHeadings(c.PostForm("subHeadings")),
			Quotes:          fields.List(c.PostFormArray("quotes")),
			HighlightPoints: fields.List(c.PostFormArray("highlightPoints")),
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v := validate.Blog{
		Name:        req.Name,
		Author:      req.Author,
		Description: req.Description,
		Content:     req.Content,
	}
	if errs := validate.BlogPost(v); errs != nil {
		failValidation(c, errs)
		return
	}

	image := strings.TrimSpace(req.Image)
	if fh, err := c.FormFile("image"); err == nil {
		path, err := s.uploads.Save(fh, upload.Images)
		if err != nil {
			uploadFail(c, err, "Error creating blog")
			return
		}
		image = path
	}
	if image == "" {
		fail(c, http.StatusBadRequest, "Featured image is required")
		return
	}

	b := &blog.Blog{
		Name:            strings.TrimSpace(req.Name),
		Author:          strings.TrimSpace(req.Author),
		Description:     strings.TrimSpace(req.Description),
		Content:         strings.TrimSpace(req.Content),
		Image:           upload.NormalizePath(image),
		Category:        strings.TrimSpace(req.Category),
		Date:            parseDate(req.Date),
		Excerpt:         strings.TrimSpace(req.Excerpt),
		SubHeadings:     req.SubHeadings,
		Quotes:          req.Quotes.Split().Strings(),
		HighlightPoints: req.HighlightPoints.Split().Strings(),
	}

	out, err := s.st.Blogs.Insert(c.Request.Context(), b)
	if err != nil {
		failStore(c, "Error creating blog", err)
		return
	}
	respond(c, http.StatusCreated, "Blog created successfully", out)
}

func (s *Server) listBlogs(c *gin.Context) {
	blogs, err := s.st.Blogs.List(c.Request.Context())
	if err != nil {
		failStore(c, "Error fetching blogs", err)
		return
	}
	respondList(c, blogs, len(blogs))
}

func (s *Server) getBlog(c *gin.Context) {
	id, ok := objectID(c, "Invalid blog ID")
	if !ok {
		return
	}

	b, err := s.st.Blogs.GetByID(c.Request.Context(), id)
	if errors.Is(err, blog.ErrNotFound) {
		fail(c, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching blog", err)
		return
	}
	respond(c, http.StatusOK, "", b)
}

type blogUpdateReq struct {
	Name            *string              `json:"name"`
	Author          *string              `json:"author"`
	Description     *string              `json:"description"`
	Content         *string              `json:"content"`
	Image           *string              `json:"image"`
	Category        *string              `json:"category"`
	Date            *string              `json:"date"`
	Excerpt         *string              `json:"excerpt"`
	SubHeadings     *blog.SubHeadingList `json:"subHeadings"`
	Quotes          *fields.List         `json:"quotes"`
	HighlightPoints *fields.List         `json:"highlightPoints"`
}

func (s *Server) updateBlog(c *gin.Context) {
	id, ok := objectID(c, "Invalid blog ID")
	if !ok {
		return
	}

	var u blog.Update
	if isMultipart(c) {
		var parseErr bool
		u, parseErr = s.blogUpdateFromForm(c)
		if parseErr {
			return
		}
	} else {
		var req blogUpdateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		u = blog.Update{
			Name:        trimmed(req.Name),
			Author:      trimmed(req.Author),
			Description: trimmed(req.Description),
			Content:     trimmed(req.Content),
			Category:    trimmed(req.Category),
			Excerpt:     trimmed(req.Excerpt),
		}
		if req.Image != nil {
			img := upload.NormalizePath(strings.TrimSpace(*req.Image))
			u.Image = &img
		}
		if req.Date != nil {
			d := parseDate(*req.Date)
			u.Date = &d
		}
		if req.SubHeadings != nil {
			sh := []blog.SubHeading(*req.SubHeadings)
			u.SubHeadings = &sh
		}
		if req.Quotes != nil {
			q := req.Quotes.Split().Strings()
			u.Quotes = &q
		}
		if req.HighlightPoints != nil {
			hp := req.HighlightPoints.Split().Strings()
			u.HighlightPoints = &hp
		}
	}

	b, err := s.st.Blogs.Update(c.Request.Context(), id, u)
	if errors.Is(err, blog.ErrNotFound) {
		fail(c, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating blog", err)
		return
	}
	respond(c, http.StatusOK, "Blog updated successfully", b)
}

func (s *Server) blogUpdateFromForm(c *gin.Context) (blog.Update, bool) {
	var u blog.Update

	form, err := c.MultipartForm()
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid form data")
		return u, true
	}

	u.Name = postForm(c, "name")
	u.Author = postForm(c, "author")
	u.Description = postForm(c, "description")
	u.Content = postForm(c, "content")
	u.Category = postForm(c, "category")
	u.Excerpt = postForm(c, "excerpt")

	if fh, err := c.FormFile("image"); err == nil {
		path, err := s.uploads.Save(fh, upload.Images)
		if err != nil {
			uploadFail(c, err, "Error updating blog")
			return u, true
		}
		img := upload.NormalizePath(path)
		u.Image = &img
	} else if raw, ok := c.GetPostForm("image"); ok {
		img := upload.NormalizePath(strings.TrimSpace(raw))
		u.Image = &img
	}

	if raw, ok := c.GetPostForm("date"); ok {
		d := parseDate(raw)
		u.Date = &d
	}
	if raw, ok := c.GetPostForm("subHeadings"); ok {
		sh := blog.ParseSubHeadings(raw)
		u.SubHeadings = &sh
	}
	if raw, ok := form.Value["quotes"]; ok {
		q := fields.List(raw).Split().Strings()
		u.Quotes = &q
	}
	if raw, ok := form.Value["highlightPoints"]; ok {
		hp := fields.List(raw).Split().Strings()
		u.HighlightPoints = &hp
	}
	return u, false
}

func (s *Server) deleteBlog(c *gin.Context) {
	id, ok := objectID(c, "Invalid blog ID")
	if !ok {
		return
	}

	err := s.st.Blogs.Delete(c.Request.Context(), id)
	if errors.Is(err, blog.ErrNotFound) {
		fail(c, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		failStore(c, "Error deleting blog", err)
		return
	}
	respond(c, http.StatusOK, "Blog deleted successfully", nil)
}

// parseDate accepts RFC 3339 or plain dates; anything else falls back
// to the zero time, which the model defaults to now at persist time.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
