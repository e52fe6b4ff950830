package main

import (
	"log"

	"comanda_manager/config"
	"comanda_manager/database"
	"comanda_manager/handler"
	"comanda_manager/router"
	"comanda_manager/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       600,
	}))

	storage := database.ConnectStorage()
	comandas := store.NewComandaStore(storage)
	order := store.NewCurrentOrderStore(storage)

	handler.StartBackupScheduler(comandas)
	defer handler.StopBackupScheduler()
	handler.StartIntegritySweeper(comandas)
	defer handler.StopIntegritySweeper()

	router.SetupRoutes(app, comandas, order)

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
