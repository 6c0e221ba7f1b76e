// Package apperror holds the error taxonomy shared by the usecases and its
// mapping onto HTTP responses.
package apperror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrNotFound: the referenced exchange, summary or user does not exist or
	// is not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a summary already exists for the (user, exchange) pair.
	ErrConflict = errors.New("conflict")
	// ErrInvalidSummary: a document is not an object, has a section of the
	// wrong type, or carries none of the known sections.
	ErrInvalidSummary = errors.New("invalid summary format")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	// ErrUpstream: the summarization oracle call failed or timed out.
	ErrUpstream = errors.New("summarization service failed")
	// ErrUpstreamFormat: the oracle replied with something that is not JSON.
	ErrUpstreamFormat = errors.New("summarization service returned malformed output")
)

// StatusCode maps an error chain onto an HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidSummary), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUpstream), errors.Is(err, ErrUpstreamFormat):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether a fresh call may succeed where this one failed.
func Retryable(err error) bool {
	return errors.Is(err, ErrUpstream) || errors.Is(err, ErrUpstreamFormat)
}

// Respond writes err as a JSON error body. Internal errors are not echoed
// to the client.
func Respond(c *gin.Context, err error) {
	status := StatusCode(err)
	_ = c.Error(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	body := gin.H{"error": msg}
	if Retryable(err) {
		body["retryable"] = true
	}
	c.JSON(status, body)
}
