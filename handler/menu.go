package handler

import (
	"comanda_manager/database"
	"comanda_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMenu devolve o cardápio completo agrupado por categoria
func GetMenu() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SuccessResponse(c, fiber.StatusOK, database.MenuCategories())
	}
}

// GetAddons devolve a lista de adicionais disponíveis
func GetAddons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SuccessResponse(c, fiber.StatusOK, database.AdicionalItems())
	}
}
