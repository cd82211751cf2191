package middleware

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"httpfromtcp/internal/http/request"
	"httpfromtcp/internal/server"
)

type AccessLog struct {
	logger *log.Logger
	now    func() time.Time
}

func NewAccessLog(logger *log.Logger) *AccessLog {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLog{logger: logger, now: time.Now}
}

func (a *AccessLog) Wrap(next server.Handler) server.Handler {
	return server.HandlerFunc(func(w io.Writer, req *request.Request) error {
		start := a.now()
		cw := &countingWriter{w: w}

		err := next.Handle(cw, req)

		a.logger.Printf("%s %s -> %s (%d bytes) in %s",
			req.RequestLine.Method, req.RequestLine.RequestTarget, outcome(err), cw.n, a.now().Sub(start))
		return err
	})
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var handlerErr *server.HandlerError
	if errors.As(err, &handlerErr) {
		return fmt.Sprintf("%d %s", int(handlerErr.StatusCode), handlerErr.StatusCode.Reason())
	}
	return "error: " + err.Error()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
