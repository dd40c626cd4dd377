// Package kv é a porta de persistência durável: uma coleção
// serializada por tipo de entidade, guardada sob uma chave fixa.
package kv

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	// Get devolve o valor da chave ou ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put grava o valor inteiro da chave (sem escrita parcial).
	Put(ctx context.Context, key string, value []byte) error
}

// Open constrói o backend configurado.
func Open(backend, dataDir, redisAddr string, redisDB int) (Store, error) {
	switch backend {
	case "redis":
		return NewRedisStore(redisAddr, redisDB), nil
	case "file":
		return NewFileStore(dataDir)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("kv: unknown backend %q", backend)
	}
}
