// Package httpapi exposes the REST API over gin: one handler file per
// resource, uniform response envelope, JWT-guarded admin surfaces.
package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/realtydesk/realty-api/internal/admin"
	"github.com/realtydesk/realty-api/internal/auth"
	"github.com/realtydesk/realty-api/internal/blog"
	"github.com/realtydesk/realty-api/internal/config"
	"github.com/realtydesk/realty-api/internal/contact"
	"github.com/realtydesk/realty-api/internal/feedback"
	"github.com/realtydesk/realty-api/internal/gallery"
	"github.com/realtydesk/realty-api/internal/inquiry"
	"github.com/realtydesk/realty-api/internal/logging"
	"github.com/realtydesk/realty-api/internal/property"
	"github.com/realtydesk/realty-api/internal/team"
	"github.com/realtydesk/realty-api/internal/testimonial"
	"github.com/realtydesk/realty-api/internal/upload"
	"github.com/realtydesk/realty-api/internal/user"
)

// Store interfaces are declared here, on the consumer side, so
// handlers can be tested against fakes.

type PropertyStore interface {
	Insert(ctx context.Context, p *property.Property) (*property.Property, error)
	List(ctx context.Context, opts property.ListOptions) ([]*property.Property, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*property.Property, error)
	Update(ctx context.Context, id primitive.ObjectID, u property.Update) (*property.Property, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type InquiryStore interface {
	Insert(ctx context.Context, i *inquiry.Inquiry) (*inquiry.Inquiry, error)
	List(ctx context.Context) ([]*inquiry.Inquiry, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*inquiry.Inquiry, error)
	Update(ctx context.Context, id primitive.ObjectID, u inquiry.Update) (*inquiry.Inquiry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserStore interface {
	Insert(ctx context.Context, u *user.User) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Role(ctx context.Context, id string) (string, error)
	Update(ctx context.Context, id primitive.ObjectID, u user.Update) (*user.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AdminStore interface {
	Insert(ctx context.Context, a *admin.Admin) (*admin.Admin, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*admin.Admin, error)
	FindByEmail(ctx context.Context, email string) (*admin.Admin, error)
	Update(ctx context.Context, id primitive.ObjectID, u admin.Update) (*admin.Admin, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
}

type BlogStore interface {
	Insert(ctx context.Context, b *blog.Blog) (*blog.Blog, error)
	List(ctx context.Context) ([]*blog.Blog, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*blog.Blog, error)
	Update(ctx context.Context, id primitive.ObjectID, u blog.Update) (*blog.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type GalleryStore interface {
	Insert(ctx context.Context, g *gallery.Gallery) (*gallery.Gallery, error)
	List(ctx context.Context) ([]*gallery.Gallery, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*gallery.Gallery, error)
	Update(ctx context.Context, id primitive.ObjectID, u gallery.Update) (*gallery.Gallery, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TestimonialStore interface {
	Insert(ctx context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error)
	List(ctx context.Context, onlyApproved bool) ([]*testimonial.Testimonial, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*testimonial.Testimonial, error)
	Update(ctx context.Context, id primitive.ObjectID, u testimonial.Update) (*testimonial.Testimonial, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type FeedbackStore interface {
	Insert(ctx context.Context, f *feedback.Feedback) (*feedback.Feedback, error)
	List(ctx context.Context, onlyApproved bool) ([]*feedback.Feedback, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*feedback.Feedback, error)
	Update(ctx context.Context, id primitive.ObjectID, u feedback.Update) (*feedback.Feedback, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status feedback.Status) (*feedback.Feedback, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TeamStore interface {
	Insert(ctx context.Context, m *team.Member) (*team.Member, error)
	List(ctx context.Context) ([]*team.Member, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*team.Member, error)
	Update(ctx context.Context, id primitive.ObjectID, u team.Update) (*team.Member, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ContactStore interface {
	Insert(ctx context.Context, ct *contact.Contact) (*contact.Contact, error)
	List(ctx context.Context) ([]*contact.Contact, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*contact.Contact, error)
	Update(ctx context.Context, id primitive.ObjectID, u contact.Update) (*contact.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Stores bundles every repository the server needs.
type Stores struct {
	Properties   PropertyStore
	Inquiries    InquiryStore
	Users        UserStore
	Admins       AdminStore
	Blogs        BlogStore
	Galleries    GalleryStore
	Testimonials TestimonialStore
	Feedback     FeedbackStore
	Team         TeamStore
	Contacts     ContactStore
}

// NewStores wires the real mongo-backed repositories.
func NewStores(db *mongo.Database) Stores {
	return Stores{
		Properties:   property.NewRepository(db),
		Inquiries:    inquiry.NewRepository(db),
		Users:        user.NewRepository(db),
		Admins:       admin.NewRepository(db),
		Blogs:        blog.NewRepository(db),
		Galleries:    gallery.NewRepository(db),
		Testimonials: testimonial.NewRepository(db),
		Feedback:     feedback.NewRepository(db),
		Team:         team.NewRepository(db),
		Contacts:     contact.NewRepository(db),
	}
}

// Server holds the handler dependencies.
type Server struct {
	cfg     config.Config
	st      Stores
	uploads *upload.Gateway
}

// NewServer creates the API server.
func NewServer(cfg config.Config, st Stores) *Server {
	return &Server{cfg: cfg, st: st, uploads: upload.NewGateway(cfg.UploadDir)}
}

// Router builds the gin engine with every route mounted.
func (s *Server) Router() *gin.Engine {
	if !s.cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/uploads", s.uploads.Dir())

	userAuth := auth.Require(auth.KindUser, s.cfg.JWTSecret)
	adminAuth := auth.Require(auth.KindAdmin, s.cfg.JWTSecret)
	adminRole := auth.RequireAdminRole(s.st.Users)

	props := r.Group("/api/properties")
	{
		props.GET("", s.listProperties)
		props.GET("/:id", s.getProperty)
		props.POST("/createProperty", s.createProperty)
		props.PUT("/:id", s.updateProperty)
		props.DELETE("/:id", s.deleteProperty)
	}

	inq := r.Group("/api/inquiry")
	{
		inq.POST("/createInquiry", s.createInquiry)
		inq.GET("", s.listInquiries)
		inq.GET("/getInquiryById/:id", s.getInquiry)
		inq.PUT("/updateInquiry/:id", s.updateInquiry)
		inq.DELETE("/deleteInquiry/:id", s.deleteInquiry)
	}

	users := r.Group("/api/auth")
	{
		users.POST("/register", s.register)
		users.POST("/login", s.login)
		users.GET("/profile", userAuth, s.getProfile)
		users.PUT("/profile", userAuth, s.updateProfile)
		users.GET("/users", userAuth, adminRole, s.listUsers)
		users.DELETE("/users/:id", userAuth, adminRole, s.deleteUser)
	}

	admins := r.Group("/api/admin")
	{
		admins.POST("/register", s.adminRegister)
		admins.POST("/login", s.adminLogin)
		admins.GET("/profile", adminAuth, s.adminProfile)
		admins.PUT("/profile", adminAuth, s.updateAdminProfile)
		admins.PUT("/change-password", adminAuth, s.changeAdminPassword)
	}

	blogs := r.Group("/api/blog")
	{
		blogs.GET("", s.listBlogs)
		blogs.GET("/:id", s.getBlog)
		blogs.POST("", s.createBlog)
		blogs.PUT("/:id", s.updateBlog)
		blogs.DELETE("/:id", s.deleteBlog)
	}

	gal := r.Group("/api/gallery")
	{
		gal.GET("", s.listGallery)
		gal.GET("/:id", s.getGalleryItem)
		gal.POST("", s.createGalleryItem)
		gal.PUT("/:id", s.updateGalleryItem)
		gal.DELETE("/:id", s.deleteGalleryItem)
	}

	tst := r.Group("/api/testimonials")
	{
		tst.GET("", s.listTestimonials)
		tst.GET("/:id", s.getTestimonial)
		tst.POST("", s.createTestimonial)
		tst.PUT("/:id", s.updateTestimonial)
		tst.DELETE("/:id", s.deleteTestimonial)
	}

	fb := r.Group("/api/feedback")
	{
		fb.GET("", s.listApprovedFeedback)
		fb.POST("", s.createFeedback)
		fb.GET("/admin/all", s.listAllFeedback)
		fb.GET("/:id", s.getFeedback)
		fb.PUT("/:id/status", s.updateFeedbackStatus)
		fb.PUT("/:id", s.updateFeedback)
		fb.DELETE("/:id", s.deleteFeedback)
	}

	tm := r.Group("/api/team")
	{
		tm.GET("", s.listTeam)
		tm.GET("/:id", s.getTeamMember)
		tm.POST("", s.createTeamMember)
		tm.PUT("/:id", s.updateTeamMember)
		tm.DELETE("/:id", s.deleteTeamMember)
	}

	ct := r.Group("/api/contact")
	{
		ct.POST("", s.createContact)
		ct.GET("", s.listContacts)
		ct.GET("/:id", s.getContact)
		ct.PUT("/:id", s.updateContact)
		ct.DELETE("/:id", s.deleteContact)
	}

	return r
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	if err := s.Router().Run(addr); err != nil {
		return fmt.Errorf("running http server: %w", err)
	}
	return nil
}
