package validate

import (
	"comanda_manager/model"
	"comanda_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func AddItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados inválidos", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func ConfirmAddons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ConfirmAddonsInput
		// Corpo vazio equivale a confirmar sem nenhum adicional
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados inválidos", err)
			}
			if err := validate.Struct(input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
			}
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateQuantity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateQuantityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados inválidos", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateObservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateObservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados inválidos", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
