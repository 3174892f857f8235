// Package handler holds the echo handlers of the REST API.
package handler

import (
	"net/http"
	"net/url"
	"time"

	"tracker/internal/delivery/http/middleware"
	domainerrors "tracker/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Timestamps are rendered in UTC. A non-zero sub-second part is always
// written as six digits, e.g. 2024-05-01T08:00:00.250000Z.
const (
	dateLayout      = "2006-01-02T15:04:05Z07:00"
	dateLayoutMicro = "2006-01-02T15:04:05.000000Z07:00"
)

// lastDateLayouts are the accepted last_date formats, fractional seconds first.
var lastDateLayouts = []string{
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05Z",
}

func formatDate(t time.Time) string {
	t = t.UTC().Truncate(time.Microsecond)
	if t.Nanosecond() == 0 {
		return t.Format(dateLayout)
	}

	return t.Format(dateLayoutMicro)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)

	return &s
}

func parseLastDate(raw string) (*time.Time, error) {
	for _, layout := range lastDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, domainerrors.ErrInvalidLastDate.WithDetails(raw)
}

// trackLabel returns the :label path parameter. Echo matches routes against
// URL.RawPath when it is set, leaving params escaped; otherwise they come from
// the already decoded URL.Path and must not be unescaped again.
func trackLabel(c echo.Context) string {
	label := c.Param("label")
	if c.Request().URL.RawPath == "" {
		return label
	}
	if unescaped, err := url.PathUnescape(label); err == nil {
		return unescaped
	}

	return label
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// bindAndValidate binds the JSON body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(bindErrorDetails(err))
	}

	return c.Validate(req)
}

func bindErrorDetails(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}

		return http.StatusText(httpErr.Code)
	}

	return err.Error()
}
