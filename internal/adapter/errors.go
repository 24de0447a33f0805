package adapter

import "errors"

var (
	ErrInvalidEndpoint     = errors.New("invalid peer endpoint")
	ErrUnavailable         = errors.New("peer unavailable")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrMalformedResponse   = errors.New("malformed peer response")
)
