package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/api/metrics"
	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
	"github.com/99minutos/auth-service/internal/pkg/token"
)

// Context keys shared by the pipeline stages and the handlers behind them.
const (
	DecodedTokenKey = "decoded_token"
	UserKey         = "user"
	BodyKey         = "body"
)

// Body decodes the JSON request body once per request and returns the shared
// value. Later calls return the same pointer, so stages can normalize fields
// in place for the handlers downstream.
func Body(c echo.Context) (*ports.CredentialsInput, error) {
	if in, ok := c.Get(BodyKey).(*ports.CredentialsInput); ok {
		return in, nil
	}

	in := &ports.CredentialsInput{}
	if err := c.Bind(in); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	c.Set(BodyKey, in)
	return in, nil
}

// DecodedToken returns the claims attached by Restricted.
func DecodedToken(c echo.Context) (*token.Claims, bool) {
	claims, ok := c.Get(DecodedTokenKey).(*token.Claims)
	return claims, ok && claims != nil
}

// CurrentUser returns the record attached by CheckUsernameExists.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(UserKey).(*domain.User)
	return user, ok && user != nil
}

// reject counts the rejection and returns the error the error handler renders.
func reject(stage string, code int, message string) error {
	metrics.PipelineRejectionsTotal.WithLabelValues(stage, http.StatusText(code)).Inc()
	return echo.NewHTTPError(code, message)
}
