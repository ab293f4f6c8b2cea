package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petstar/internal/application/usecase/abstraction"
	"petstar/internal/domain/dto"
	"petstar/internal/presentation"
)

type UserHandler struct {
	users abstraction.UserService
}

func NewUserHandler(users abstraction.UserService) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// HandleCreate handles POST /api/users JSON requests.
func (h *UserHandler) HandleCreate(c echo.Context) error {
	var req dto.UserCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	user, err := h.users.Create(c.Request().Context(), req)
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, dto.UserFromModel(user))
}

// HandleGet handles GET /api/users/:id requests.
func (h *UserHandler) HandleGet(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.UserFromModel(user))
}

// HandleMe handles GET /api/users/me requests.
func (h *UserHandler) HandleMe(c echo.Context) error {
	user, err := h.users.Me(c.Request().Context(), presentation.PrincipalFrom(c))
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.UserFromModel(user))
}
