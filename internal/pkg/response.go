package pkg

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/aegisx/platform/internal/domain"
)

// Version is reported in the meta block of every response.
const Version = "1.0.0"

// requestIDContextKey mirrors the key set by the request-id middleware.
const requestIDContextKey = "request_id"

// Meta accompanies every API response.
type Meta struct {
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	RequestID string    `json:"request_id,omitempty"`
}

// Pagination is the page metadata attached to list responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ErrorBody carries the taxonomy code and message of a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Response is the uniform JSON envelope for all API responses.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
	Meta       Meta        `json:"meta"`
}

func meta(c *gin.Context) Meta {
	m := Meta{
		Timestamp: time.Now().UTC(),
		Version:   Version,
	}
	if id, exists := c.Get(requestIDContextKey); exists {
		if s, ok := id.(string); ok {
			m.RequestID = s
		}
	}
	return m
}

// Success sends a 200 envelope with the given data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	})
}

// Created sends a 201 envelope with the given data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	})
}

// List sends a 200 envelope for a paginated result, lifting the page
// metadata into the envelope's pagination block.
func List[T any](c *gin.Context, result *domain.PageResult[T]) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    result.Data,
		Pagination: &Pagination{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
		Meta: meta(c),
	})
}

// Error sends an error envelope. If err is a *domain.AppError its code is
// mapped to the appropriate HTTP status and serialized; otherwise the
// response is a 500 with an internal error body.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	body := &ErrorBody{
		Code:    domain.CodeInternal,
		Message: "internal error",
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		body.Code = appErr.Code
		body.Message = appErr.Message
		body.Details = appErr.Details
	}

	c.JSON(status, Response{
		Success: false,
		Error:   body,
		Meta:    meta(c),
	})
}

// ErrorWithStatus sends an error envelope with an explicit status and code,
// for failures that never pass through the domain error taxonomy (auth
// middleware, route fallbacks).
func ErrorWithStatus(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message},
		Meta:    meta(c),
	})
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it automatically sends a validation error envelope and returns
// false. Because obj is available, JSON struct tags are used for field names
// when possible. Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		validationError(c, err, obj)
		return false
	}
	return true
}

// validationError sends a 400 envelope with per-field validation details.
// When obj is non-nil, it reflects on the struct to prefer JSON tag names.
func validationError(c *gin.Context, err error, obj any) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// Not a validation error; malformed body or wrong types.
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   &ErrorBody{Code: domain.CodeValidation, Message: err.Error()},
			Meta:    meta(c),
		})
		return
	}

	jsonTags := buildJSONTagMap(obj)

	fieldErrors := make(map[string]string, len(ve))
	for _, fe := range ve {
		name := fe.Field()
		if tag, ok := jsonTags[fe.StructField()]; ok {
			name = tag
		} else {
			name = strings.ToLower(name)
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fieldErrors[name] = msg
	}

	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error: &ErrorBody{
			Code:    domain.CodeValidation,
			Message: "validation error",
			Details: fieldErrors,
		},
		Meta: meta(c),
	})
}

// buildJSONTagMap returns a map from struct field name to its JSON tag name.
// If obj is nil or not a struct (pointer), it returns an empty map.
func buildJSONTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if name := parseJSONTagName(tag); name != "" {
			m[f.Name] = name
		}
	}
	return m
}

// parseJSONTagName extracts the field name from a JSON struct tag value.
func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}
