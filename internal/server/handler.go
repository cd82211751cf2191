package server

import (
	"fmt"
	"io"

	"httpfromtcp/internal/http/request"
	"httpfromtcp/internal/http/response"
)

// Handler produces the response body for a parsed request by writing to w.
// Returning nil sends whatever was written with status 200. Returning a
// *HandlerError discards the written bytes and sends its status and message
// instead.
type Handler interface {
	Handle(w io.Writer, req *request.Request) error
}

type HandlerFunc func(w io.Writer, req *request.Request) error

func (f HandlerFunc) Handle(w io.Writer, req *request.Request) error {
	return f(w, req)
}

type HandlerError struct {
	StatusCode response.StatusCode
	Message    string
}

func NewHandlerError(code response.StatusCode, message string) *HandlerError {
	return &HandlerError{StatusCode: code, Message: message}
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler error %d: %s", int(e.StatusCode), e.Message)
}
