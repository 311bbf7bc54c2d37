// Package picture wires the picture upload and read routes.
package picture

import (
	"fmt"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/Forgos-ynov/Vault-API/pkg/middleware"
	picturesvc "github.com/Forgos-ynov/Vault-API/pkg/service/picture"
	"github.com/Forgos-ynov/Vault-API/pkg/view"
	"github.com/Forgos-ynov/Vault-API/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the picture endpoints.
func Routes(app *fiber.App, svc *picturesvc.Service, cfg *config.Jwt) {
	jwt := middleware.JwtProtected(cfg)

	app.Get("/api/pictures/:id", jwt, GetPicture(svc))
	app.Post("/api/pictures", jwt, UploadPicture(svc))
}

// UploadPicture stores a multipart image upload and persists its metadata.
// @Summary Upload picture
// @Description Store the multipart "picture" file on disk and persist its metadata
// @Tags pictures
// @Accept multipart/form-data
// @Produce json
// @Param picture formData file true "Image file"
// @Success 201 {object} domain.Picture
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /api/pictures [post]
// @Security Bearer
func UploadPicture(svc *picturesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("picture")
		if err != nil {
			file = nil
		}
		p, violations, err := svc.Upload(c.Context(), file)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if len(violations) > 0 {
			return common.ViolationsResponseJSON(c, violations)
		}
		raw, err := view.Render(p, view.GroupPicture)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/pictures/%d", p.ID))
		return common.SendJSONString(c, fiber.StatusCreated, string(raw))
	}
}

// GetPicture returns the picture metadata, pointing at the public file
// path through the Location header.
// @Summary Get picture by ID
// @Tags pictures
// @Produce json
// @Param id path int true "Picture ID"
// @Success 200 {object} domain.Picture
// @Success 204 "Picture absent"
// @Failure 401 {object} common.ProblemDetails
// @Router /api/pictures/{id} [get]
// @Security Bearer
func GetPicture(svc *picturesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c)
		if err != nil {
			return nil
		}
		p, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		raw, err := view.Render(p, view.GroupPicture)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, p.PublicPath)
		return common.SendJSONString(c, fiber.StatusOK, string(raw))
	}
}
