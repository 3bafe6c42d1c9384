package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/realtydesk/realty-api/internal/team"
	"github.com/realtydesk/realty-api/internal/upload"
)

func (s *Server) createTeamMember(c *gin.Context) {
	name := c.PostForm("name")
	designation := c.PostForm("designation")

	var errs []string
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(designation) == "" {
		errs = append(errs, "Designation is required")
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
			uploadFail(c, err, "Error creating team member")
			return
		}
		image = path
	}

	m := &team.Member{
		Name:        strings.TrimSpace(name),
		Designation: strings.TrimSpace(designation),
		Image:       upload.NormalizePath(image),
	}

	out, err := s.st.Team.Insert(c.Request.Context(), m)
	if err != nil {
		failStore(c, "Error creating team member", err)
		return
	}
	respond(c, http.StatusCreated, "Team member created successfully", out)
}

func (s *Server) listTeam(c *gin.Context) {
	members, err := s.st.Team.List(c.Request.Context())
	if err != nil {
		failStore(c, "Error fetching team members", err)
		return
	}
	respondList(c, members, len(members))
}

func (s *Server) getTeamMember(c *gin.Context) {
	id, ok := objectID(c, "Invalid team member ID")
	if !ok {
		return
	}

	m, err := s.st.Team.GetByID(c.Request.Context(), id)
	if errors.Is(err, team.ErrNotFound) {
		fail(c, http.StatusNotFound, "Team member not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching team member", err)
		return
	}
	respond(c, http.StatusOK, "", m)
}

func (s *Server) updateTeamMember(c *gin.Context) {
	id, ok := objectID(c, "Invalid team member ID")
	if !ok {
		return
	}

	u := team.Update{
		Name:        postForm(c, "name"),
		Designation: postForm(c, "designation"),
	}

	if fh, err := c.FormFile("image"); err == nil {
		path, err := s.uploads.Save(fh, upload.Images)
		if err != nil {
			uploadFail(c, err, "Error updating team member")
			return
		}
		img := upload.NormalizePath(path)
		u.Image = &img
	} else if raw, present := c.GetPostForm("image"); present {
		img := upload.NormalizePath(strings.TrimSpace(raw))
		u.Image = &img
	}

	m, err := s.st.Team.Update(c.Request.Context(), id, u)
	if errors.Is(err, team.ErrNotFound) {
		fail(c, http.StatusNotFound, "Team member not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating team member", err)
		return
	}
	respond(c, http.StatusOK, "Team member updated successfully", m)
}

func (s *Server) deleteTeamMember(c *gin.Context) {
	id, ok := objectID(c, "Invalid team member ID")
	if !ok {
		return
	}

	err := s.st.Team.Delete(c.Request.Context(), id)
	if errors.Is(err, team.ErrNotFound) {
		fail(c, http.StatusNotFound, "Team member not found")
		return
	}
	if err != nil {
		failStore(c, "Error deleting team member", err)
		return
	}
	respond(c, http.StatusOK, "Team member deleted successfully", nil)
}
