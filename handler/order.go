package handler

import (
	"errors"
	"fmt"

	"comanda_manager/database"
	"comanda_manager/model"
	"comanda_manager/store"
	"comanda_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentOrder devolve a comanda em montagem com o total ao vivo e o
// modo atual (comanda nova ou adição à comanda existente)
func GetCurrentOrder(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		addingTo, _ := order.AddingTo()
		response := fiber.Map{
			"items":             order.Items(),
			"totalAmount":       order.Total(),
			"addingToComandaId": addingTo,
		}
		if pending, ok := order.PendingAddonItem(); ok {
			response["pendingAddonItem"] = pending
		}
		return utils.SuccessResponse(c, fiber.StatusOK, response)
	}
}

// AddItemToOrder inicia o fluxo de adição: item com adicionais
// configuráveis fica aguardando a escolha; item simples entra direto,
// fundindo com a linha idêntica já existente quando houver
func AddItemToOrder(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := c.Locals("input").(model.AddItemInput)

		menuItem, ok := database.FindMenuItem(input.MenuItemID)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Item não existe no cardápio", errors.New("item não encontrado"))
		}

		if menuItem.HasAddons() {
			order.StartAddonSelection(menuItem)
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
				"message":         fmt.Sprintf("Escolha os adicionais de %s.", menuItem.Name),
				"pendingItem":     menuItem,
				"availableAddons": menuItem.AvailableAddons,
			})
		}

		item, merged := order.QuickAdd(menuItem)
		message := fmt.Sprintf("%s adicionado à comanda atual.", menuItem.Name)
		if merged {
			message = fmt.Sprintf("Quantidade de %s aumentada.", menuItem.Name)
		}
		return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
			"message": message,
			"item":    item,
			"merged":  merged,
		})
	}
}

// ConfirmOrderAddons conclui a seleção de adicionais do item pendente
func ConfirmOrderAddons(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := c.Locals("input").(model.ConfirmAddonsInput)

		addons := []model.AddonSelection{}
		for _, entry := range input.Addons {
			addonItem, ok := database.FindMenuItem(entry.AddonID)
			if !ok {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Adicional não existe no cardápio: "+entry.AddonID, errors.New("adicional não encontrado"))
			}
			addons = append(addons, model.AddonSelection{AddonItem: addonItem, Quantity: entry.Quantity})
		}

		item, err := order.ConfirmAddonSelection(addons)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Nenhum item aguardando adicionais", err)
		}
		return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
			"message": fmt.Sprintf("%s adicionado à comanda atual.", item.Name),
			"item":    item,
		})
	}
}

// SkipOrderAddons adiciona o item pendente sem adicionais
func SkipOrderAddons(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := order.SkipAddonSelection()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Nenhum item aguardando adicionais", err)
		}
		return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
			"message": fmt.Sprintf("%s adicionado à comanda atual.", item.Name),
			"item":    item,
		})
	}
}

// CancelOrderAddons descarta a seleção de adicionais pendente
func CancelOrderAddons(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		order.CancelAddonSelection()
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Seleção de adicionais cancelada."})
	}
}

// UpdateOrderItemQuantity ajusta a quantidade da linha; zero ou menos
// remove a linha
func UpdateOrderItemQuantity(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		instanceID := c.Locals("instanceId").(string)
		input := c.Locals("input").(model.UpdateQuantityInput)

		if err := order.UpdateQuantity(instanceID, input.Quantity); err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Item não está na comanda atual", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"items":       order.Items(),
			"totalAmount": order.Total(),
		})
	}
}

func UpdateOrderItemObservation(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		instanceID := c.Locals("instanceId").(string)
		input := c.Locals("input").(model.UpdateObservationInput)

		if err := order.UpdateObservation(instanceID, input.Observation); err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Item não está na comanda atual", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"items": order.Items()})
	}
}

func RemoveOrderItem(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		instanceID := c.Locals("instanceId").(string)

		if err := order.RemoveItem(instanceID); err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Item não está na comanda atual", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"message":     "Item removido da comanda atual.",
			"items":       order.Items(),
			"totalAmount": order.Total(),
		})
	}
}

// ClearCurrentOrder esvazia a comanda atual. Em modo de adição também
// desfaz o apontamento para a comanda alvo (cancelamento da adição).
func ClearCurrentOrder(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, adding := order.AddingTo(); adding {
			order.CancelAddition()
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Adição cancelada e itens descartados."})
		}
		order.Clear()
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Comanda atual esvaziada."})
	}
}

// EnterAppendMode redireciona a comanda atual para adicionar itens a uma
// comanda já finalizada. Itens pendentes são descartados, como no fluxo
// original de "adicionar itens à comanda".
func EnterAppendMode(comandas *store.ComandaStore, order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comandaID := c.Locals("comandaId").(string)

		target, ok := comandas.Get(comandaID)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Comanda não encontrada", store.ErrComandaNotFound)
		}

		order.Clear()
		order.EnterAppendMode(comandaID)
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"message":           fmt.Sprintf("Adicionando itens à Comanda Nº %d.", target.ComandaNumber),
			"addingToComandaId": comandaID,
		})
	}
}

// ExitAppendMode volta ao modo de comanda nova sem descartar itens
func ExitAppendMode(order *store.CurrentOrderStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		order.ExitAppendMode()
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Modo de adição encerrado."})
	}
}
