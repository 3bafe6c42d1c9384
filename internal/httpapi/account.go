package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/realtydesk/realty-api/internal/auth"
	"github.com/realtydesk/realty-api/internal/user"
	"github.com/realtydesk/realty-api/internal/validate"
)

// accountView is the serialized account shape returned with tokens.
type accountView struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
}

// authPayload bundles an account with its bearer token.
type authPayload struct {
	User  accountView `json:"user"`
	Token string      `json:"token"`
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v := validate.Register{Name: req.Name, Email: req.Email, Password: req.Password}
	if errs := validate.RegisterForm(v); errs != nil {
		failValidation(c, errs)
		return
	}
	if req.Role != "" && req.Role != user.RoleUser && req.Role != user.RoleAdmin {
		fail(c, http.StatusBadRequest, "Role must be user or admin")
		return
	}

	ctx := c.Request.Context()
	if _, err := s.st.Users.FindByEmail(ctx, req.Email); err == nil {
		fail(c, http.StatusBadRequest, "User already exists with this email")
		return
	} else if !errors.Is(err, user.ErrNotFound) {
		failStore(c, "Error registering user", err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		failStore(c, "Error registering user", err)
		return
	}

	u := &user.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: hash,
		Role:     req.Role,
	}
	if _, err := s.st.Users.Insert(ctx, u); err != nil {
		failStore(c, "Error registering user", err)
		return
	}

	token, err := s.userToken(u.ID)
	if err != nil {
		failStore(c, "Error registering user", err)
		return
	}
	respond(c, http.StatusCreated, "User registered successfully", authPayload{
		User:  accountView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
		Token: token,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := s.st.Users.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, user.ErrNotFound) {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		failStore(c, "Error logging in", err)
		return
	}
	if !auth.CheckPassword(u.Password, req.Password) {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.userToken(u.ID)
	if err != nil {
		failStore(c, "Error logging in", err)
		return
	}
	respond(c, http.StatusOK, "Login successful", authPayload{
		User:  accountView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
		Token: token,
	})
}

func (s *Server) getProfile(c *gin.Context) {
	id, ok := principalID(c)
	if !ok {
		return
	}

	u, err := s.st.Users.GetByID(c.Request.Context(), id)
	if errors.Is(err, user.ErrNotFound) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		failStore(c, "Error fetching profile", err)
		return
	}
	respond(c, http.StatusOK, "", u)
}

type profileUpdateReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (s *Server) updateProfile(c *gin.Context) {
	id, ok := principalID(c)
	if !ok {
		return
	}

	var req profileUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email != nil && !validate.Email(*req.Email) {
		fail(c, http.StatusBadRequest, "Valid email is required")
		return
	}

	u, err := s.st.Users.Update(c.Request.Context(), id, user.Update{
		Name:  trimmed(req.Name),
		Email: req.Email,
	})
	if errors.Is(err, user.ErrNotFound) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		failStore(c, "Error updating profile", err)
		return
	}
	respond(c, http.StatusOK, "Profile updated successfully", u)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.st.Users.List(c.Request.Context())
	if err != nil {
		failStore(c, "Error fetching users", err)
		return
	}
	respondList(c, users, len(users))
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := objectID(c, "Invalid user ID")
	if !ok {
		return
	}

	err := s.st.Users.Delete(c.Request.Context(), id)
	if errors.Is(err, user.ErrNotFound) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		failStore(c, "Error deleting user", err)
		return
	}
	respond(c, http.StatusOK, "User deleted successfully", nil)
}

func (s *Server) userToken(id primitive.ObjectID) (string, error) {
	return auth.NewToken(s.cfg.JWTSecret,
		auth.Principal{Kind: auth.KindUser, ID: id.Hex()}, s.cfg.TokenExpiry)
}

// principalID reads the authenticated principal's id from the request
// context. The auth middleware guarantees it is present and well formed.
func principalID(c *gin.Context) (primitive.ObjectID, bool) {
	p, ok := auth.FromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Invalid token")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		fail(c, http.StatusUnauthorized, "Invalid token")
		return primitive.NilObjectID, false
	}
	return id, true
}
