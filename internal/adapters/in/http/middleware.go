package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/user"
)

// callerEmailKey is the echo context key holding the authenticated
// caller's email, set by requireAuth.
const callerEmailKey = "callerEmail"

func callerEmail(ctx echo.Context) string {
	email, _ := ctx.Get(callerEmailKey).(string)
	return email
}

// requireAuth verifies the bearer token and stores the caller's email on
// the request context. Tokens carry identity only, so no role is trusted
// from the token itself.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		email, err := s.tokens.EmailFromToken(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired token",
			})
		}

		ctx.Set(callerEmailKey, email)

		return next(ctx)
	}
}

// requireAdmin resolves the caller's role from the user store on every
// request. It fails closed: a caller whose role cannot be resolved is
// forbidden, not passed through.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		query, err := queries.NewGetUserRoleQuery(callerEmail(ctx))
		if err != nil {
			return forbidden(ctx)
		}

		role, err := s.getUserRoleHandler.Handle(ctx.Request().Context(), query)
		if err != nil || role != user.RoleAdmin.String() {
			return forbidden(ctx)
		}

		return next(ctx)
	}
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, Error{
		Code:    http.StatusForbidden,
		Message: "admin role required",
	})
}

// requestTimeout bounds every handler with a per-request deadline.
func requestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx.Request().Context(), timeout)
			defer cancel()

			ctx.SetRequest(ctx.Request().WithContext(timeoutCtx))

			return next(ctx)
		}
	}
}
