package controller

import (
	"errors"
	"gestionforestal/services"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserID is the identity the session gate attached to the request.
func UserID(c *gin.Context) uint {
	return c.MustGet("userId").(uint)
}

// ParseID reads the :id path parameter. Anything that is not a positive
// integer is treated as a missing record.
func ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func IsSubmission(c *gin.Context) bool {
	return c.Request.Method == http.MethodPost
}

// SeeOther redirects after a successful form submission.
func SeeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func NotFound(c *gin.Context, message string) {
	Render(c, http.StatusNotFound, "404.html", gin.H{"error": message})
}

// ServerError logs a store failure and renders the generic error page.
func ServerError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	Render(c, http.StatusInternalServerError, "500.html", gin.H{"error": "Ha ocurrido un error interno. Intente nuevamente más tarde."})
}

// FieldErrors turns a binding or service validation error into field messages.
// The second result is false for errors that are not user-correctable.
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = translate(fe)
		}
		return out, true
	}
	var serr *services.ValidationError
	if errors.As(err, &serr) {
		return serr.Fields, true
	}
	return nil, false
}

// SafeNext accepts only local absolute paths as post-login destinations.
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}

// InvalidForm re-renders a form with its field errors and status 422.
func InvalidForm(c *gin.Context, name string, data gin.H, err error) {
	fields, ok := FieldErrors(err)
	if !ok {
		fields = map[string]string{"__all__": "Los datos enviados no son válidos."}
	}
	data["errors"] = fields
	Render(c, http.StatusUnprocessableEntity, name, data)
}

// ServiceError maps a service failure to NotFound, a re-rendered form or the
// generic error page.
func ServiceError(c *gin.Context, name string, data gin.H, err error) {
	if errors.Is(err, services.ErrNotFound) {
		NotFound(c, "El registro solicitado no existe.")
		return
	}
	if _, ok := FieldErrors(err); ok {
		InvalidForm(c, name, data, err)
		return
	}
	ServerError(c, err)
}
