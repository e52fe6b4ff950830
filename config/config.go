package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config lê variável de ambiente, carregando o .env se existir
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}
