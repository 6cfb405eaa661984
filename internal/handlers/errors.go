package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// APIError is the failure payload for every endpoint.
type APIError struct {
	Code int    `json:"error_code"`
	Msg  string `json:"error_msg"`
	Err  error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Msg, e.Err.Error())
	}
	return e.Msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewValidationError covers request-shape problems: missing or wrong-typed fields.
func NewValidationError(msg string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Msg: msg}
}

// NewConflictError covers business-rule violations: duplicate names, dangling
// references, empty required text fields.
func NewConflictError(msg string) *APIError {
	return &APIError{Code: http.StatusConflict, Msg: msg}
}

func NewNotFoundError(msg string) *APIError {
	return &APIError{Code: http.StatusNotFound, Msg: msg}
}

// NewInternalError hides the underlying cause from the response; it is only logged.
func NewInternalError(err error) *APIError {
	return &APIError{
		Code: http.StatusInternalServerError,
		Msg:  "internal server error",
		Err:  err,
	}
}

// storeError maps an unexpected write failure to a response. The handlers
// pre-check uniqueness and references, but a concurrent request can still win
// the race to the constraint; that surfaces as the same 409 the pre-check
// would have produced.
func storeError(err error) *APIError {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewConflictError("duplicate name")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NewConflictError("referenced row does not exist")
	default:
		return NewInternalError(err)
	}
}

func respondError(c *gin.Context, apiErr *APIError) {
	if apiErr.Err != nil {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, apiErr.Err)
	}
	c.JSON(apiErr.Code, apiErr)
}
