package http

import (
	"errors"
	"net/http"

	"errand-planner/internal/errand"
	pkgErrors "errand-planner/pkg/errors"
)

var (
	errInvalidLatitude  = pkgErrors.NewHTTPError(http.StatusBadRequest, "latitude must be between -90 and 90")
	errInvalidLongitude = pkgErrors.NewHTTPError(http.StatusBadRequest, "longitude must be between -180 and 180")
	errIDRequired       = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errand.ErrMissingLocation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errand.ErrInvalidFilter):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be one of all, completed, pending")
	case errors.Is(err, errand.ErrHistoryNotFound),
		errors.Is(err, errand.ErrNoLatestRoute):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
