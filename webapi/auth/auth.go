// Package auth wires the login route.
package auth

import (
	"errors"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	authsvc "github.com/Forgos-ynov/Vault-API/pkg/service/auth"
	"github.com/Forgos-ynov/Vault-API/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the login endpoint. The only route served without a
// token.
func Routes(app *fiber.App, svc *authsvc.Service) {
	app.Post("/api/login", Login(svc))
}

// Login authenticates a user and returns a JWT.
// @Summary User login
// @Description Authenticate with username and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /api/login [post]
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		if input.Username == "" || input.Password == "" {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid credentials payload", "username and password are required")
		}
		u, err := svc.Login(c.Context(), input.Username, input.Password)
		if err != nil {
			if errors.Is(err, domain.ErrUserUnauthorized) {
				return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Invalid username or password", nil)
			}
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		}
		token, err := svc.GenerateToken(u)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", fiber.Map{"token": token})
	}
}
