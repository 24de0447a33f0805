package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/snapback/internal/service"
	"github.com/MKhiriev/snapback/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidQueryParam: http.StatusBadRequest,
	ErrInvalidJSON:       http.StatusBadRequest,

	service.ErrInvalidInput:          http.StatusBadRequest,
	service.ErrReplicaUnavailable:    http.StatusBadGateway,
	service.ErrLookupFailure:         http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError maps err to an HTTP status. Client errors win over server
// errors when err wraps both.
func statusFromError(err error) int {
	status := http.StatusInternalServerError
	matched := false
	for target, s := range errorStatusMap {
		if errors.Is(err, target) && (!matched || s < status) {
			status, matched = s, true
		}
	}
	return status
}
