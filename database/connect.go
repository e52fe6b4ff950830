package database

import (
	"context"
	"fmt"
	"log"

	"comanda_manager/config"

	"github.com/redis/go-redis/v9"
)

// Slots nomeados no armazenamento durável. Cada um guarda um array JSON.
const (
	SlotComandas     = "Comandas"
	SlotComandaAtual = "ComandaAtual"
)

// Storage é a abstração chave/valor usada pelas stores. Get devolve
// string vazia (sem erro) quando a chave não existe.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

type RedisStorage struct {
	client *redis.Client
}

func ConnectStorage() *RedisStorage {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		panic(fmt.Sprintf("failed to connect storage: %v", err))
	}
	log.Println("Connection Opened to Storage")

	return &RedisStorage{client: client}
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *RedisStorage) Set(ctx context.Context, key string, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
