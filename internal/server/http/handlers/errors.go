package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/server/http/dto"
)

func init() {
	// Field errors are keyed by the JSON name the client sent.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

var statusByError = []struct {
	err    error
	status int
}{
	{domainErrors.ErrProductNotFound, http.StatusNotFound},
	{domainErrors.ErrNotFound, http.StatusNotFound},
	{domainErrors.ErrAlreadyExists, http.StatusConflict},
	{domainErrors.ErrInvalidInput, http.StatusUnprocessableEntity},
	{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{domainErrors.ErrLinkExpired, http.StatusGone},
	{domainErrors.ErrLinkInactive, http.StatusForbidden},
	{domainErrors.ErrDownloadLimitReached, http.StatusForbidden},
}

// respondError writes the status mapped from err. Unknown errors become 500 and
// are attached to the context for the request logger.
func respondError(c *gin.Context, err error) {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			c.JSON(m.status, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
}

// respondBindError reports a malformed request body, per field when validation failed.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: fields})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
}
