package http

import (
	"errors"
	"net/http"

	"launchpad-mattermost/internal/notification"
	pkgErrors "launchpad-mattermost/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var renderErr *notification.RenderError
	switch {
	case errors.As(err, &renderErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, notification.ReplyInvalidEvent+": "+renderErr.Error())
	case errors.Is(err, notification.ErrTargetNotFound):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, notification.ErrTargetNotFound.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
