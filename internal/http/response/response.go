package response

import (
	"fmt"
	"io"
	"strconv"

	"httpfromtcp/internal/http/headers"
)

type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusBadRequest          StatusCode = 400
	StatusInternalServerError StatusCode = 500
)

// Reason returns the reason phrase sent on the status line. Codes outside the
// supported set get an empty phrase.
func (c StatusCode) Reason() string {
	switch c {
	case StatusOK:
		return "Ok"
	case StatusBadRequest:
		return "Bad Request"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return ""
	}
}

func WriteStatusLine(w io.Writer, code StatusCode) error {
	line := fmt.Sprintf("HTTP/1.1 %d %s\r\n", int(code), code.Reason())
	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("write status line: %w", err)
	}
	return nil
}

func DefaultHeaders(contentLength int) *headers.Headers {
	h := headers.New()
	h.Replace("Content-Length", strconv.Itoa(contentLength))
	h.Replace("Connection", "close")
	h.Replace("Content-Type", "text/plain")
	return h
}

func WriteHeaders(w io.Writer, h *headers.Headers) error {
	size := 2
	h.ForEach(func(name, value string) {
		size += len(name) + 2 + len(value) + 2
	})

	buf := make([]byte, 0, size)
	h.ForEach(func(name, value string) {
		buf = append(buf, name...)
		buf = append(buf, ':', ' ')
		buf = append(buf, value...)
		buf = append(buf, '\r', '\n')
	})
	buf = append(buf, '\r', '\n')

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	return nil
}

func WriteBody(w io.Writer, body []byte) error {
	if len(body) == 0 {
		return nil
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return nil
}
