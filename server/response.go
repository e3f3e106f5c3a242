package server

import (
	"errors"
	"net/http"

	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/source"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Application error codes carried in the envelope. Zero means success,
// negative values classify the failure independently of the HTTP status.
const (
	codeOK           = 0
	codeInternal     = -1
	codeInvalidQuery = -2
	codeNotFound     = -3
	codeUnavailable  = -4
)

func success(data any) Response {
	return Response{Code: codeOK, Message: "success", Data: data}
}

func failure(code int, message string) Response {
	return Response{Code: code, Message: message}
}

// classify maps a domain error onto an HTTP status and an envelope code.
func classify(err error) (status, code int) {
	switch {
	case errors.Is(err, source.ErrInvalidQuery), errors.Is(err, provider.ErrUnknownParser):
		return http.StatusBadRequest, codeInvalidQuery
	case errors.Is(err, source.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, source.ErrSourceUnavailable):
		return http.StatusBadGateway, codeUnavailable
	default:
		return http.StatusInternalServerError, codeInternal
	}
}
