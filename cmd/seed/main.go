// seed crea las cuentas iniciales del equipo de ventas: un admin y un
// vendedor, con credenciales tomadas del entorno.
//
// Uso: go run ./cmd/seed
// Variables: SEED_ADMIN_USERNAME/SEED_ADMIN_PASSWORD y
// SEED_VENDEDOR_USERNAME/SEED_VENDEDOR_PASSWORD (con defaults de desarrollo).
// Si el usuario ya existe se deja tal cual.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vinces1leon/inmobiliaria-mye/internal/domain"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"
	"github.com/vinces1leon/inmobiliaria-mye/internal/infrastructure/postgres"
	"github.com/vinces1leon/inmobiliaria-mye/pkg/config"
	"github.com/vinces1leon/inmobiliaria-mye/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	seedUsers := []struct {
		username, password, fullName, email, role string
	}{
		{
			username: envOr("SEED_ADMIN_USERNAME", "admin"),
			password: envOr("SEED_ADMIN_PASSWORD", "admin123"),
			fullName: "Administrador",
			email:    envOr("SEED_ADMIN_EMAIL", "admin@grupomye.com"),
			role:     entity.RoleAdmin,
		},
		{
			username: envOr("SEED_VENDEDOR_USERNAME", "vendedor"),
			password: envOr("SEED_VENDEDOR_PASSWORD", "ventas123"),
			fullName: "Vendedor",
			email:    envOr("SEED_VENDEDOR_EMAIL", "ventas@grupomye.com"),
			role:     entity.RoleVendedor,
		},
	}

	for _, s := range seedUsers {
		existing, err := userRepo.FindByUsername(s.username)
		if err != nil {
			log.Fatal().Err(err).Str("username", s.username).Msg("buscar usuario")
		}
		if existing != nil {
			log.Info().Str("username", s.username).Msg("usuario ya existe, se omite")
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Username:     s.username,
			Email:        s.email,
			PasswordHash: string(hash),
			FullName:     s.fullName,
			Role:         s.role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(user); err != nil {
			if err == domain.ErrDuplicate {
				log.Info().Str("username", s.username).Msg("usuario ya existe, se omite")
				continue
			}
			log.Fatal().Err(err).Str("username", s.username).Msg("crear usuario")
		}
		log.Info().Str("username", s.username).Str("role", s.role).Msg("usuario creado")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
