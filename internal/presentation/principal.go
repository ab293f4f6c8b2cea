package presentation

import (
	"github.com/labstack/echo/v4"

	"petstar/internal/domain/entity"
)

// PrincipalFrom returns the requester set by the requester middleware, or an anonymous one.
func PrincipalFrom(c echo.Context) entity.Principal {
	p, _ := c.Get(PrincipalKey).(entity.Principal)

	return p
}
