package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	httpadapter "resume-composer/internal/adapter/http"
	repo "resume-composer/internal/adapter/repository"
	"resume-composer/internal/config"
	"resume-composer/internal/infrastructure/migration"
	"resume-composer/internal/model"
	"resume-composer/internal/usecase"
	"resume-composer/pkg/ai"
	infra "resume-composer/pkg/infrastructure"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// infra setup; the service keeps generating even when persistence is down
	pool, err := infra.NewResumesPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("warning: resumes DB not available: %v", err)
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Printf("warning: migrations failed: %v", err)
		}
	}

	resumes := repo.NewResumesRepo(pool)
	provider := ai.NewClient(cfg.AIServiceURL)
	builder := model.NewBuilder()
	generator := usecase.NewGenerator(provider, builder)

	var preview httpadapter.PreviewRenderer
	if cfg.ChromePreview {
		preview = infra.NewChromePreviewRenderer(cfg.ChromePath)
	}

	app := fiber.New()
	h := httpadapter.NewHandler(generator, builder, resumes, preview)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
