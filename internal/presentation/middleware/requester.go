package middleware

import (
	"github.com/labstack/echo/v4"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/entity"
	"petstar/internal/presentation"
)

// Requester turns the requester header into the principal handed to usecases. A missing header
// yields an anonymous principal.
func Requester() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal := entity.NewPrincipal(ctx.Request().Header.Get(presentation.RequesterHeader))
			ctx.Set(presentation.PrincipalKey, principal)

			return next(ctx)
		}
	}
}

// RequireRequester rejects anonymous requests. It must run after Requester.
func RequireRequester() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if presentation.PrincipalFrom(ctx).Anonymous() {
				return presentation.ErrorJSON(ctx, apperr.ErrAuthenticationRequired)
			}

			return next(ctx)
		}
	}
}
