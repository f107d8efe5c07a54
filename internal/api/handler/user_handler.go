package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/core/ports"
)

// UserHandler serves the user listing endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every registered user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200   {array}   domain.User
// @Failure      401   {object}  messageResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single user. Admin only.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  domain.User
// @Failure      401      {object}  messageResponse
// @Failure      403      {object}  messageResponse
// @Failure      404      {object}  messageResponse
// @Router       /api/users/{user_id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
