package handler

import (
	"errors"
	"fmt"

	"comanda_manager/model"
	"comanda_manager/store"
	"comanda_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetComandas lista as comandas finalizadas, da mais recente para a mais
// antiga (número decrescente)
func GetComandas(comandas *store.ComandaStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SuccessResponse(c, fiber.StatusOK, comandas.List())
	}
}

func GetComanda(comandas *store.ComandaStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comandaID := c.Locals("comandaId").(string)

		comanda, ok := comandas.Get(comandaID)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Comanda não encontrada", store.ErrComandaNotFound)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, comanda)
	}
}

// FinalizeComanda fecha a comanda atual. Em modo normal cria uma comanda
// nova; em modo de adição acrescenta uma sessão à comanda alvo. Nos dois
// casos a comanda atual é esvaziada ao final.
func FinalizeComanda(comandas *store.ComandaStore, order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := c.Locals("input").(model.FinalizeComandaInput)
		items := order.Items()

		if targetID, adding := order.AddingTo(); adding {
			comanda, err := comandas.AddItems(targetID, items)
			if err != nil {
				if errors.Is(err, store.ErrComandaNotFound) {
					return utils.ErrorResponse(c, fiber.StatusNotFound, "Comanda não encontrada", err)
				}
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Adicione itens antes de enviar", err)
			}
			order.CancelAddition()
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
				"message": fmt.Sprintf("Itens adicionados à Comanda Nº %d.", comanda.ComandaNumber),
				"comanda": comanda,
			})
		}

		comanda, err := comandas.Finalize(items, input.CustomerName)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Adicione itens antes de finalizar", err)
		}
		order.Clear()
		return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
			"message": fmt.Sprintf("Comanda Nº %d finalizada.", comanda.ComandaNumber),
			"comanda": comanda,
		})
	}
}

func UpdateComandaStatus(comandas *store.ComandaStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comandaID := c.Locals("comandaId").(string)
		input := c.Locals("input").(model.UpdateStatusInput)

		comanda, err := comandas.UpdateStatus(comandaID, input.Status)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Comanda não encontrada", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"message": fmt.Sprintf("Comanda Nº %d atualizada para %s.", comanda.ComandaNumber, comanda.Status),
			"comanda": comanda,
		})
	}
}

// DeleteComanda remove a comanda definitivamente; não há como desfazer
func DeleteComanda(comandas *store.ComandaStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comandaID := c.Locals("comandaId").(string)

		if err := comandas.Delete(comandaID); err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Comanda não encontrada", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Comanda excluída."})
	}
}

// ExportComandas devolve o relatório textual de todas as comandas
func ExportComandas(comandas *store.ComandaStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(utils.ExportComandasToText(comandas.List()))
	}
}

// ImportComandas interpreta um relatório textual e mescla as comandas na
// coleção. Duplicadas por id são puladas; erros de linha não interrompem
// a importação.
func ImportComandas(comandas *store.ComandaStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		text := c.Locals("importText").(string)

		imported, parseErrors := utils.ImportComandasFromText(text)
		result := comandas.ImportMerge(imported)
		result.Errors = parseErrors

		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"message": fmt.Sprintf("%d comanda(s) importada(s), %d duplicada(s).",
				result.SuccessCount, result.DuplicateCount),
			"result": result,
		})
	}
}

// GetComandaQRCode devolve um PNG com o QR do id da comanda, para
// conferência rápida no balcão
func GetComandaQRCode(comandas *store.ComandaStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comandaID := c.Locals("comandaId").(string)

		comanda, ok := comandas.Get(comandaID)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Comanda não encontrada", store.ErrComandaNotFound)
		}

		qrBytes, err := utils.GenerateQRCode(comanda.ID, 256)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao gerar QR code", err)
		}
		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(qrBytes)
	}
}
