package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/retail-pos/internal/application/usecase"
	"github.com/jhoicas/retail-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/retail-pos/internal/interfaces/cli"
	"github.com/jhoicas/retail-pos/pkg/config"
	"github.com/jhoicas/retail-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Ctrl+C cancela las consultas en curso; el pool se libera por el defer.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)

	menu := cli.NewMenu(productUC, productRepo, txRunner, log, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil {
		log.Error().Err(err).Msg("menú interactivo")
	}

	log.Info().Msg("aplicación detenida")
}
