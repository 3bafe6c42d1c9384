package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/realtydesk/realty-api/internal/admin"
	"github.com/realtydesk/realty-api/internal/auth"
	"github.com/realtydesk/realty-api/internal/upload"
	"github.com/realtydesk/realty-api/internal/validate"
)

// adminView is the serialized admin shape returned with tokens.
type adminView struct {
	ID             primitive.ObjectID `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	ProfilePicture string             `json:"profilePicture"`
}

type adminAuthPayload struct {
	User  adminView `json:"user"`
	Token string    `json:"token"`
}

func (s *Server) adminRegister(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		fail(c, http.StatusBadRequest, "Name is required")
		return
	}
	if !validate.Email(req.Email) {
		fail(c, http.StatusBadRequest, "Email is required")
		return
	}
	if len(req.Password) < 6 {
		fail(c, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	ctx := c.Request.Context()
	if _, err := s.st.Admins.FindByEmail(ctx, req.Email); err == nil {
		fail(c, http.StatusBadRequest, "Admin already exists with this email")
		return
	} else if !errors.Is(err, admin.ErrNotFound) {
		failStore(c, "Error registering admin", err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		failStore(c, "Error registering admin", err)
		return
	}

	a := &admin.Admin{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: hash,
	}
	if _, err := s.st.Admins.Insert(ctx, a); err != nil {
		failStore(c, "Error registering admin", err)
		return
	}

	token, err := s.adminToken(a.ID)
	if err != nil {
		failStore(c, "Error registering admin", err)
		return
	}
	respond(c, http.StatusCreated, "Admin registered successfully", adminAuthPayload{
		User:  adminView{ID: a.ID, Name: a.Name, Email: a.Email, ProfilePicture: a.ProfilePicture},
		Token: token,
	})
}

func (s *Server) adminLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	a, err := s.st.Admins.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, admin.ErrNotFound) {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		failStore(c, "Error logging in", err)
		return
	}
	if !auth.CheckPassword(a.Password, req.Password) {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.adminToken(a.ID)
	if err != nil {
		failStore(c, "Error logging in", err)
		return
	}
	respond(c, http.StatusOK, "Login successful", adminAuthPayload{
		User:  adminView{ID: a.ID, Name: a.Name, Email: a.Email, ProfilePicture: a.ProfilePicture},
		Token: token,
	})
}

func (s *Server) adminProfile(c *gin.Context) {
	id, ok := principalID(c)
	if !ok {
		return
	}

	a, err := s.st.Admins.GetByID(c.Request.Context(), id)
	if errors.Is(err, admin.ErrNotFound) {
		fail(c, http.StatusNotFound, "Admin not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching profile", err)
		return
	}
	respond(c, http.StatusOK, "", a)
}

// updateAdminProfile accepts an optional name field and an optional
// profilePicture file on a multipart request.
func (s *Server) updateAdminProfile(c *gin.Context) {
	id, ok := principalID(c)
	if !ok {
		return
	}

	u := admin.Update{Name: postForm(c, "name")}

	if fh, err := c.FormFile("profilePicture"); err == nil {
		path, err := s.uploads.Save(fh, upload.Images)
		if err != nil {
			uploadFail(c, err, "Error updating profile")
			return
		}
		normalized := upload.NormalizePath(path)
		u.ProfilePicture = &normalized
	}

	a, err := s.st.Admins.Update(c.Request.Context(), id, u)
	if errors.Is(err, admin.ErrNotFound) {
		fail(c, http.StatusNotFound, "Admin not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating profile", err)
		return
	}
	respond(c, http.StatusOK, "Profile updated successfully", a)
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *Server) changeAdminPassword(c *gin.Context) {
	id, ok := principalID(c)
	if !ok {
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		fail(c, http.StatusBadRequest, "Current password and new password are required")
		return
	}
	if len(req.NewPassword) < 6 {
		fail(c, http.StatusBadRequest, "New password must be at least 6 characters long")
		return
	}

	ctx := c.Request.Context()
	a, err := s.st.Admins.GetByID(ctx, id)
	if errors.Is(err, admin.ErrNotFound) {
		fail(c, http.StatusNotFound, "Admin not found")
		return
	}
	if err != nil {
		failStore(c, "Error changing password", err)
		return
	}
	if !auth.CheckPassword(a.Password, req.CurrentPassword) {
		fail(c, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		failStore(c, "Error changing password", err)
		return
	}
	if err := s.st.Admins.SetPassword(ctx, id, hash); err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			fail(c, http.StatusNotFound, "Admin not found")
			return
		}
		failStore(c, "Error changing password", err)
		return
	}
	respond(c, http.StatusOK, "Password changed successfully", nil)
}

func (s *Server) adminToken(id primitive.ObjectID) (string, error) {
	return auth.NewToken(s.cfg.JWTSecret,
		auth.Principal{Kind: auth.KindAdmin, ID: id.Hex()}, s.cfg.TokenExpiry)
}
