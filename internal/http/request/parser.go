package request

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

var crlf = []byte("\r\n")

const supportedVersion = "1.1"

// Parse advances the state machine over data and returns how many bytes it
// consumed. Unconsumed bytes must be handed back, with more input appended,
// on the next call.
func (r *Request) Parse(data []byte) (int, error) {
	total := 0
	for r.state != stateDone {
		before := r.state
		n, err := r.parseSingle(data[total:])
		if err != nil {
			return total, err
		}
		total += n

		if n == 0 && r.state == before {
			break
		}
	}
	return total, nil
}

func (r *Request) parseSingle(data []byte) (int, error) {
	switch r.state {
	case stateRequestLine:
		line, n, err := parseRequestLine(data)
		if err != nil || n == 0 {
			return 0, err
		}
		r.RequestLine = *line
		r.state = stateHeaders
		return n, nil

	case stateHeaders:
		n, done, err := r.Headers.Parse(data)
		if err != nil {
			return 0, err
		}
		if done {
			r.state = stateBody
		}
		return n, nil

	case stateBody:
		return r.parseBody(data)

	case stateDone:
		return 0, nil

	default:
		return 0, fmt.Errorf("unknown parser state %d", r.state)
	}
}

func parseRequestLine(data []byte) (*RequestLine, int, error) {
	lineEnd := bytes.Index(data, crlf)
	if lineEnd == -1 {
		return nil, 0, nil
	}

	parts := strings.Fields(string(data[:lineEnd]))
	if len(parts) != 3 {
		return nil, 0, fmt.Errorf("%w: expected 3 parts, got %d", ErrMalformedRequestLine, len(parts))
	}

	method, ok := ParseMethod(parts[0])
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidMethod, parts[0])
	}

	protocol, version, ok := strings.Cut(parts[2], "/")
	if !ok || protocol != "HTTP" || version != supportedVersion {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedHTTPVersion, parts[2])
	}

	return &RequestLine{
		Method:        method,
		RequestTarget: parts[1],
		HTTPVersion:   version,
	}, lineEnd + len(crlf), nil
}

func (r *Request) parseBody(data []byte) (int, error) {
	if r.contentLength < 0 {
		length, err := r.declaredContentLength()
		if err != nil {
			return 0, err
		}
		r.contentLength = length
	}

	remaining := r.contentLength - len(r.Body)
	n := min(remaining, len(data))
	r.Body = append(r.Body, data[:n]...)

	if len(r.Body) == r.contentLength {
		r.state = stateDone
	}
	return n, nil
}

func (r *Request) declaredContentLength() (int, error) {
	raw, ok := r.Headers.Get("Content-Length")
	if !ok {
		return 0, nil
	}

	length, err := strconv.Atoi(raw)
	if err != nil || length < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedContentLength, raw)
	}
	return length, nil
}
