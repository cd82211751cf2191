package request

import (
	"fmt"

	"httpfromtcp/internal/http/headers"
)

var (
	ErrMalformedRequestLine   = fmt.Errorf("malformed request line")
	ErrInvalidMethod          = fmt.Errorf("invalid request method")
	ErrUnsupportedHTTPVersion = fmt.Errorf("unsupported http version")
	ErrMalformedContentLength = fmt.Errorf("malformed content-length")
	ErrLineTooLong            = fmt.Errorf("line exceeds read buffer")
	ErrIncompleteRequest      = fmt.Errorf("connection closed before request was complete")

	ErrMalformedHeader = headers.ErrMalformedHeader
)

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

func ParseMethod(raw string) (Method, bool) {
	switch m := Method(raw); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m, true
	default:
		return "", false
	}
}

type RequestLine struct {
	Method        Method
	RequestTarget string
	HTTPVersion   string
}

type parserState int

const (
	stateRequestLine parserState = iota
	stateHeaders
	stateBody
	stateDone
)

func (s parserState) String() string {
	switch s {
	case stateRequestLine:
		return "request-line"
	case stateHeaders:
		return "headers"
	case stateBody:
		return "body"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Request is filled in by Parse until it reports Done. After that it is only
// read.
type Request struct {
	RequestLine RequestLine
	Headers     *headers.Headers
	Body        []byte

	state         parserState
	contentLength int
}

func New() *Request {
	return &Request{
		Headers:       headers.New(),
		state:         stateRequestLine,
		contentLength: -1,
	}
}

func (r *Request) Done() bool {
	return r.state == stateDone
}
