// Package respond shapes the storefront's JSON envelope: every response
// carries a success flag and, on failure, a human-readable message naming
// the offending condition.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape shared by all endpoints. Extra payload fields
// (order, orders, products, data) ride alongside the flag.
type Envelope map[string]any

// OK sends a success envelope with optional payload fields merged in.
func OK(c *gin.Context, status int, message string, payload Envelope) {
	body := Envelope{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail sends a failure envelope with the given status and message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{"success": false, "message": message})
}

// ErrorMapper translates a service error into an HTTP status plus message.
// It reports false when it does not recognize the error.
type ErrorMapper func(err error) (int, string, bool)

// Responder walks a mapper chain before falling back to an opaque 500, so
// infrastructure failures never leak storage internals to the caller.
type Responder struct {
	mappers []ErrorMapper
}

// NewResponder builds a responder from the given mapper chain.
func NewResponder(mappers ...ErrorMapper) *Responder {
	return &Responder{mappers: mappers}
}

// AddMapper appends an error mapper to the chain.
func (r *Responder) AddMapper(mapper ErrorMapper) {
	r.mappers = append(r.mappers, mapper)
}

// Error maps err through the chain and writes the failure envelope.
func (r *Responder) Error(c *gin.Context, err error, fallback string) {
	for _, mapper := range r.mappers {
		if status, message, ok := mapper(err); ok {
			Fail(c, status, message)
			return
		}
	}
	if fallback == "" {
		fallback = "internal server error"
	}
	Fail(c, http.StatusInternalServerError, fallback)
}
