package bootstrap

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"httpfromtcp/internal/config"
	"httpfromtcp/internal/middleware"
	"httpfromtcp/internal/routes"
	"httpfromtcp/internal/server"
	"httpfromtcp/internal/version"
)

var (
	ErrServerStopped = fmt.Errorf("server stopped unexpectedly")
)

type Bootstrap struct {
	Config     config.Config
	Handler    server.Handler
	SignalChan chan os.Signal

	onStart func(srv *server.Server)
}

func New(config config.Config) *Bootstrap {
	handler := middleware.Apply(routes.Demo(), middleware.NewAccessLog(nil))

	return &Bootstrap{
		Config:     config,
		Handler:    handler,
		SignalChan: make(chan os.Signal, 1),
	}
}

func (b *Bootstrap) Run() error {
	opts := server.Options{
		ReadBufferSize:  b.Config.ReadBufferSize(),
		DrainBufferSize: b.Config.DrainBufferSize(),
	}

	srv, err := server.Start(b.Config.Address(), b.Handler, opts)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	log.Printf("%s serving on %s", version.GetVersion(), srv.Addr())

	if b.onStart != nil {
		b.onStart(srv)
	}

	select {
	case sig := <-b.SignalChan:
		log.Printf("Received signal %s, shutting down", sig)
		if err = srv.Close(); err != nil {
			return fmt.Errorf("close server: %w", err)
		}
		return nil
	case <-srv.Done():
		_ = srv.Close()
		return ErrServerStopped
	}
}
