package validate

import (
	"errors"
	"strings"

	"comanda_manager/model"
	"comanda_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func FinalizeComanda() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FinalizeComandaInput
		// Corpo vazio é aceito: finalização sem nome de cliente
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados inválidos", err)
			}
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados inválidos", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if !model.IsValidStatus(input.Status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Status inválido: "+input.Status, errors.New("status fora do conjunto permitido"))
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func ImportComandas() fiber.Handler {
	return func(c *fiber.Ctx) error {
		text := string(c.Body())
		if strings.TrimSpace(text) == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Relatório vazio", errors.New("corpo da requisição vazio"))
		}
		c.Locals("importText", text)
		return c.Next()
	}
}
