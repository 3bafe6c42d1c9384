package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// envelope is the uniform response body. Count is a pointer so list
// responses can carry an explicit zero.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Count   *int     `json:"count,omitempty"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, envelope{Success: true, Message: message, Data: data})
}

func respondList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, envelope{Success: true, Count: &count, Data: data})
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, envelope{Success: false, Message: message})
}

func failValidation(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// failStore reports a repository failure with the underlying error
// text alongside the resource-specific message.
func failStore(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, envelope{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

// objectID parses the :id path param. Ids of the wrong length are
// rejected before any store call.
func objectID(c *gin.Context, invalidMsg string) (primitive.ObjectID, bool) {
	raw := c.Param("id")
	if len(raw) != 24 {
		fail(c, http.StatusBadRequest, invalidMsg)
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, invalidMsg)
		return primitive.NilObjectID, false
	}
	return id, true
}
