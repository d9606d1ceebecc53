package handler

import (
	"errors"
	"net/http"

	"facturas/internal/service"
)

// errorStatus maps service sentinel errors to HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
