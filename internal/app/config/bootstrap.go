package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// StoreClose ends the page session so late fetch completions are dropped.
	StoreClose func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.StoreClose != nil {
		b.StoreClose()
		log.Println("Successfully closed client store")
	}

	// Sync on stdout/stderr returns EINVAL on some platforms.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
