package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/async"
	"github.com/MKhiriev/go-notes/internal/store"
)

var errorStatusMap = map[error]int{
	ErrNoteNotFound:    http.StatusNotFound,
	ErrInvalidNoteID:   http.StatusBadRequest,
	ErrInvalidNoteBody: http.StatusBadRequest,
	ErrNoteNotSaved:    http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,

	async.ErrPanicked: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
