package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"files-manager/internal/application/services"
	"files-manager/internal/config"
	"files-manager/internal/delivery/handler"
	"files-manager/internal/infrastructure"
	mongodb "files-manager/internal/infrastructure/db/mongo"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	ctx := context.Background()

	db, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		e.Logger.Fatalf("connect to mongodb: %v", err)
	}
	defer func() {
		if err := db.Disconnect(ctx); err != nil {
			e.Logger.Errorf("disconnect mongodb: %v", err)
		}
	}()

	sessions, err := infrastructure.NewRedisService(cfg)
	if err != nil {
		e.Logger.Fatalf("connect to redis: %v", err)
	}
	defer sessions.Close()

	users := mongodb.NewUserRepository(db.Database())
	files := mongodb.NewFileRepository(db.Database())
	blobs := infrastructure.NewLocalBlobStorage(cfg.FolderPath)
	loginLimiter := infrastructure.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst)

	h := handler.NewHandler(
		services.NewAppService(sessions, db, users, files),
		services.NewAuthService(users, sessions, cfg.SessionTTL, loginLimiter),
		services.NewUserService(users, sessions),
		services.NewFileService(sessions, files, blobs),
	)
	h.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
