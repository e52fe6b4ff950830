package router

import (
	"comanda_manager/handler"
	"comanda_manager/store"
	"comanda_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, comandas *store.ComandaStore, order *store.CurrentOrderStore) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	menu := v1.Group("/menu")
	menu.Get("/", handler.GetMenu())
	menu.Get("/adicionais", handler.GetAddons())

	currentOrder := v1.Group("/order")
	currentOrder.Get("/", handler.GetCurrentOrder(order))
	currentOrder.Post("/items", validate.AddItem(), handler.AddItemToOrder(order))
	currentOrder.Post("/addons/confirm", validate.ConfirmAddons(), handler.ConfirmOrderAddons(order))
	currentOrder.Post("/addons/skip", handler.SkipOrderAddons(order))
	currentOrder.Delete("/addons", handler.CancelOrderAddons(order))
	currentOrder.Patch("/items/:instanceId/quantity", validate.RequiredParam("instanceId"), validate.UpdateQuantity(), handler.UpdateOrderItemQuantity(order))
	currentOrder.Patch("/items/:instanceId/observation", validate.RequiredParam("instanceId"), validate.UpdateObservation(), handler.UpdateOrderItemObservation(order))
	currentOrder.Delete("/items/:instanceId", validate.RequiredParam("instanceId"), handler.RemoveOrderItem(order))
	currentOrder.Delete("/", handler.ClearCurrentOrder(order))
	currentOrder.Post("/append-mode/:comandaId", validate.RequiredParam("comandaId"), handler.EnterAppendMode(comandas, order))
	currentOrder.Delete("/append-mode", handler.ExitAppendMode(order))
	currentOrder.Post("/finalize", validate.FinalizeComanda(), handler.FinalizeComanda(comandas, order))

	comanda := v1.Group("/comanda")
	comanda.Get("/", handler.GetComandas(comandas))
	comanda.Get("/export", handler.ExportComandas(comandas))
	comanda.Post("/import", validate.ImportComandas(), handler.ImportComandas(comandas))
	comanda.Get("/:comandaId", validate.RequiredParam("comandaId"), handler.GetComanda(comandas))
	comanda.Get("/:comandaId/qrcode", validate.RequiredParam("comandaId"), handler.GetComandaQRCode(comandas))
	comanda.Patch("/:comandaId/status", validate.RequiredParam("comandaId"), validate.UpdateStatus(), handler.UpdateComandaStatus(comandas))
	comanda.Delete("/:comandaId", validate.RequiredParam("comandaId"), handler.DeleteComanda(comandas))
}
