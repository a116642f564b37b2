package main

import (
	"context"

	"github.com/jhoicas/retail-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/retail-pos/pkg/config"
	"github.com/jhoicas/retail-pos/pkg/logger"
	"github.com/shopspring/decimal"
)

// Catálogo de demostración para probar la caja en local.
// El seed es idempotente: los IDs ya existentes se dejan como están.
var seedProducts = []struct {
	id    int64
	name  string
	price string
	qty   int64
}{
	{1, "Pen", "10.00", 50},
	{2, "Notebook", "45.50", 30},
	{3, "Stapler", "120.00", 12},
	{4, "Eraser", "5.25", 100},
	{5, "Marker", "18.75", 40},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	for _, p := range seedProducts {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			log.Fatal().Err(err).Str("price", p.price).Msg("precio de seed inválido")
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO products (id, name, price, quantity)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			p.id, p.name, price, p.qty,
		)
		if err != nil {
			log.Fatal().Err(err).Int64("product_id", p.id).Msg("insertar producto de seed")
		}
		log.Info().Int64("product_id", p.id).Str("name", p.name).Msg("producto sembrado")
	}

	log.Info().Int("count", len(seedProducts)).Msg("seed completado")
}
