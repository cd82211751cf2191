package server

import (
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"sync/atomic"

	"httpfromtcp/internal/http/request"
	"httpfromtcp/internal/random"
)

const DefaultDrainBufferSize = 4096

var (
	ErrAlreadyServing = fmt.Errorf("server is already serving")
)

type Options struct {
	// ReadBufferSize bounds the request read buffer and therefore the
	// longest request line or header line that can be parsed.
	ReadBufferSize int
	// DrainBufferSize is the chunk size used to move handler output out of
	// the in-memory pipe.
	DrainBufferSize int
}

func (o Options) withDefaults() Options {
	if o.ReadBufferSize <= 0 {
		o.ReadBufferSize = request.DefaultBufferSize
	}
	if o.DrainBufferSize <= 0 {
		o.DrainBufferSize = DefaultDrainBufferSize
	}
	return o
}

// Server accepts connections and answers exactly one request on each of
// them. It is shared by the accept loop and every connection goroutine; the
// closed flag is its only mutable field.
type Server struct {
	listener   net.Listener
	handler    Handler
	options    Options
	randomizer random.Random
	bufferPool *sync.Pool

	closed  atomic.Bool
	serving atomic.Bool
	done    chan struct{}
}

func New(listener net.Listener, handler Handler, opts Options) *Server {
	opts = opts.withDefaults()
	drainSize := opts.DrainBufferSize

	return &Server{
		listener:   listener,
		handler:    handler,
		options:    opts,
		randomizer: random.New(),
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return make([]byte, drainSize)
			},
		},
		done: make(chan struct{}),
	}
}

// Start binds address and runs the accept loop in the background. The
// returned server keeps running until Close is called.
func Start(address string, handler Handler, opts Options) (*Server, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	s := New(listener, handler, opts)
	go func() {
		if err := s.Serve(); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()
	return s, nil
}

// Serve runs the accept loop until the server is closed. It returns nil after
// Close and the listener error if the listener goes away on its own.
func (s *Server) Serve() error {
	if !s.serving.CompareAndSwap(false, true) {
		return ErrAlreadyServing
	}
	defer close(s.done)

	log.Printf("HTTP server is listening on %s", s.listener.Addr())
	for {
		if s.closed.Load() {
			return nil
		}

		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		go s.handle(conn)
	}
}

// Close stops the accept loop. Connections that were already accepted are
// left to finish on their own.
func (s *Server) Close() error {
	s.closed.Store(true)

	err := s.listener.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Done is closed once Serve has returned.
func (s *Server) Done() <-chan struct{} {
	return s.done
}
