// Command seed provisions demo data for local development: two stores, a
// small product catalog, template entries for the first store and an admin
// principal. It also prints a dev access token for exercising the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/crypto/bcrypt"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/config"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/auth"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/templates"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/storage/postgres"
	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func main() {
	adminPassword := flag.String("admin-password", "admin", "password for the seeded admin principal")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: true})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := logger.WithLogger(context.Background(), log)

	if cfg.DatabaseURL == "" {
		logger.Fatal(ctx, "DATABASE_URL is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := seed(ctx, pool, *adminPassword); err != nil {
		logger.Fatal(ctx, "seed failed", "error", err)
	}

	// Dev convenience: a ready-to-use admin token for curl.
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(cfg.JWTSecret))
	token, err := jwtService.GenerateAccessToken("admin", "Admin", true, 24*time.Hour)
	if err != nil {
		logger.Fatal(ctx, "failed to mint dev token", "error", err)
	}

	logger.Info(ctx, "seed complete")
	fmt.Printf("dev admin token:\n%s\n", token)
}

func seed(ctx context.Context, pool *postgres.Pool, adminPassword string) error {
	stores := []struct {
		name string
	}{
		{"Gangnam Store"},
		{"Hongdae Store"},
	}

	products := []struct {
		name string
		unit string
	}{
		{"Americano Beans 1kg", "bag"},
		{"Whole Milk 1L", "ea"},
		{"Paper Cup 12oz", "sleeve"},
		{"Croissant", "ea"},
		{"Syrup Vanilla", "bottle"},
		{"Napkin Pack", "pack"},
	}

	storeIDs := make([]id.ID, len(stores))
	for i, s := range stores {
		storeIDs[i] = id.New()
		query, args, err := psql.
			Insert("stores").
			Columns("id", "name", "timezone", "is_active").
			Values(storeIDs[i], s.name, "Asia/Seoul", true).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert store %q: %w", s.name, err)
		}
	}

	productIDs := make([]id.ID, len(products))
	for i, p := range products {
		productIDs[i] = id.New()
		query, args, err := psql.
			Insert("products").
			Columns("id", "name", "unit", "is_active").
			Values(productIDs[i], p.name, p.unit, true).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert product %q: %w", p.name, err)
		}
	}

	// Register the whole catalog on the first store's template.
	for i, productID := range productIDs {
		entry := templates.NewEntry(storeIDs[0], productID, i)
		query, args, err := psql.
			Insert("template_entries").
			Columns("id", "store_id", "product_id", "display_order", "is_active", "created_at").
			Values(entry.ID, entry.StoreID, entry.ProductID, entry.DisplayOrder, entry.IsActive, entry.CreatedAt).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert template entry: %w", err)
		}
	}

	// The identity service owns principals; the seed provisions the demo
	// admin row directly into the shared schema.
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	query, args, err := psql.
		Insert("principals").
		Columns("id", "name", "password_hash", "is_admin", "created_at").
		Values(id.New(), "admin", string(hash), true, time.Now().UTC()).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert admin principal: %w", err)
	}

	logger.Info(ctx, "seeded demo data",
		"stores", len(stores),
		"products", len(products),
		"template_entries", len(productIDs),
	)
	return nil
}
