package middleware

import (
	"httpfromtcp/internal/server"
)

type Middleware interface {
	Wrap(next server.Handler) server.Handler
}

// Apply wraps h so that the first middleware in mws is the outermost.
func Apply(h server.Handler, mws ...Middleware) server.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i].Wrap(h)
	}
	return h
}
