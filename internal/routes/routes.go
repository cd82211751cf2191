package routes

import (
	"io"

	"httpfromtcp/internal/http/request"
	"httpfromtcp/internal/http/response"
	"httpfromtcp/internal/server"
)

const (
	yourProblemMessage = "Your problem is not my problem\n"
	myProblemMessage   = "Your problem is too complex."
	allGoodMessage     = "All Good! frfr\n"
)

func Demo() server.Handler {
	return server.HandlerFunc(demo)
}

func demo(w io.Writer, req *request.Request) error {
	switch req.RequestLine.RequestTarget {
	case "/yourproblem":
		return server.NewHandlerError(response.StatusBadRequest, yourProblemMessage)
	case "/myproblem":
		return server.NewHandlerError(response.StatusInternalServerError, myProblemMessage)
	default:
		_, err := io.WriteString(w, allGoodMessage)
		return err
	}
}
