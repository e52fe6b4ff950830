package validate

import (
	"errors"
	"strings"

	"comanda_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RequiredParam garante que o parâmetro de rota não esteja vazio e o
// guarda nos locals do contexto
func RequiredParam(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := strings.TrimSpace(c.Params(key))
		if value == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Parâmetro obrigatório ausente: "+key, errors.New("params invalid"))
		}
		c.Locals(key, value)
		return c.Next()
	}
}
