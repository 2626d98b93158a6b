// seed puebla la base de datos con un usuario administrador y unos leads de
// ejemplo para poder probar la API recién desplegada.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (DATABASE_URL o variables DB_*).
// Es idempotente: si el admin o un lead ya existen los deja como están.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/leads"
	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/Leadflow-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userUC := usecase.NewUserUseCase(postgres.NewUserRepository(pool))
	leadUC := leads.NewUseCase(
		postgres.NewLeadRepository(pool),
		postgres.NewNotificationRepository(pool),
		postgres.NewTxRunner(pool),
		spreadsheet.NewCodec(),
	)

	if _, err := userUC.Create(ctx, dto.CreateUserRequest{
		Name:     "Administrador",
		Email:    "admin@leadflow.local",
		Password: "admin123",
		Role:     "Admin",
	}); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fmt.Println("usuario admin ya existe, se omite")
		} else {
			fmt.Fprintf(os.Stderr, "crear usuario admin: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println("usuario admin creado: admin@leadflow.local / admin123")
	}

	sample := []dto.CreateLeadRequest{
		{Name: "Juan Pérez", Phone: "+573001112233", Email: "juan.perez@example.com", Source: "Facebook", Campaign: "Lanzamiento Q3"},
		{Name: "María Gómez", Phone: "+573004445566", Email: "maria.gomez@example.com", Source: "Google Ads", Campaign: "Lanzamiento Q3"},
		{Name: "Pedro Ruiz", Phone: "+573007778899", Source: "Referral", Campaign: "Default Campaign"},
	}

	created := 0
	for _, in := range sample {
		if _, err := leadUC.Create(ctx, in); err != nil {
			if errors.Is(err, domain.ErrDuplicatePhone) {
				continue
			}
			fmt.Fprintf(os.Stderr, "crear lead %q: %v\n", in.Name, err)
			os.Exit(1)
		}
		created++
	}
	fmt.Printf("leads de ejemplo creados: %d (omitidos %d ya existentes)\n", created, len(sample)-created)
}
