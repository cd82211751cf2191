package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net"

	"httpfromtcp/internal/http/request"
	"httpfromtcp/internal/http/response"

	"golang.org/x/sync/errgroup"
)

var (
	ErrHandlerPanic = fmt.Errorf("handler panicked")
)

const connectionIDLength = 8

func (s *Server) handle(conn net.Conn) {
	connID := s.connectionID()
	defer s.closeConnection(connID, conn)

	req, err := request.FromReader(conn, s.options.ReadBufferSize)
	if err != nil {
		log.Printf("[%s] Failed to parse request from %s: %v", connID, conn.RemoteAddr(), err)
		if err = response.WriteStatusLine(conn, response.StatusBadRequest); err != nil {
			log.Printf("[%s] Failed to write bad request status: %v", connID, err)
		}
		return
	}

	status, body := s.runHandler(connID, req)

	if err = writeResponse(conn, status, body); err != nil {
		log.Printf("[%s] Failed to write response: %v", connID, err)
		return
	}

	if err = closeWrite(conn); err != nil {
		log.Printf("[%s] Failed to shutdown write side: %v", connID, err)
	}
}

// runHandler runs the handler and drains its output at the same time. The
// pipe between them has no buffer of its own, so a handler writing more than
// one chunk blocks until the drain side reads it.
func (s *Server) runHandler(connID string, req *request.Request) (response.StatusCode, []byte) {
	pr, pw := io.Pipe()

	var (
		body       bytes.Buffer
		handlerErr error
		g          errgroup.Group
	)

	g.Go(func() error {
		defer func() {
			if rec := recover(); rec != nil {
				handlerErr = fmt.Errorf("%w: %v", ErrHandlerPanic, rec)
			}
			_ = pw.Close()
		}()
		handlerErr = s.handler.Handle(pw, req)
		return nil
	})

	g.Go(func() error {
		_, err := s.copyWithBuffer(&body, pr)
		if err != nil {
			_ = pr.CloseWithError(err)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("[%s] Failed to drain handler output: %v", connID, err)
		return internalServerError()
	}

	return resolveOutcome(connID, handlerErr, body.Bytes())
}

func resolveOutcome(connID string, handlerErr error, written []byte) (response.StatusCode, []byte) {
	if handlerErr == nil {
		return response.StatusOK, written
	}

	var he *HandlerError
	if errors.As(handlerErr, &he) {
		return he.StatusCode, []byte(he.Message)
	}

	log.Printf("[%s] Handler failed: %v", connID, handlerErr)
	return internalServerError()
}

func internalServerError() (response.StatusCode, []byte) {
	return response.StatusInternalServerError, []byte(response.StatusInternalServerError.Reason())
}

func (s *Server) copyWithBuffer(dst io.Writer, src io.Reader) (int64, error) {
	buf := s.bufferPool.Get().([]byte)
	defer s.bufferPool.Put(buf)
	return io.CopyBuffer(writerOnly{dst}, src, buf)
}

// writerOnly hides ReadFrom so io.CopyBuffer moves data in pooled chunks.
type writerOnly struct {
	io.Writer
}

func writeResponse(w io.Writer, status response.StatusCode, body []byte) error {
	if err := response.WriteStatusLine(w, status); err != nil {
		return err
	}
	if err := response.WriteHeaders(w, response.DefaultHeaders(len(body))); err != nil {
		return err
	}
	return response.WriteBody(w, body)
}

func closeWrite(conn net.Conn) error {
	if closer, ok := conn.(interface{ CloseWrite() error }); ok {
		return closer.CloseWrite()
	}
	return nil
}

func (s *Server) closeConnection(connID string, conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("[%s] Error closing connection: %v", connID, err)
	}
}

func (s *Server) connectionID() string {
	id, err := s.randomizer.String(connectionIDLength)
	if err != nil {
		return "--------"
	}
	return id
}
