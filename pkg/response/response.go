package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the only error shape the API emits. The message is meant for
// humans; there is no machine-readable error code.
type ErrorBody struct {
	Message string `json:"message"`
}

// AppError is an error that knows which HTTP status it maps to.
type AppError struct {
	HTTPStatus int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequest(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Message: msg}
}

func NewNotFound(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusNotFound, Message: msg}
}

// NewServerError wraps a backing-store failure under a context message.
func NewServerError(msg string, err error) *AppError {
	return &AppError{HTTPStatus: http.StatusInternalServerError, Message: msg, Err: err}
}

// Success writes data as the bare JSON body.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as the bare JSON body with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error writes err using its AppError status, or 500 for anything else.
// The error is also attached to the context so the request log carries it.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{Message: appErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: err.Error()})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: msg})
}
