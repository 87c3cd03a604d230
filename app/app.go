package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Palani4051/Bank/configs"
	"github.com/Palani4051/Bank/internal/bank"
	"github.com/Palani4051/Bank/internal/handlers"
	"github.com/Palani4051/Bank/internal/services"
	"github.com/Palani4051/Bank/pkg"
	middleware "github.com/Palani4051/Bank/pkg/middlewares"
)

// NewApp wires dependencies, builds the Gin engine, and returns an *http.Server.
// The account registry is constructed here and lives for the process lifetime;
// there is no package-level instance.
func NewApp(logger *zap.Logger) (*http.Server, error) {
	// Load config
	cfg, err := configs.Load(logger)
	if err != nil {
		return nil, err
	}

	// Setup dependencies
	registry := bank.NewRegistry()
	accountService := services.NewAccountService(logger, registry)
	accountHandler := handlers.NewAccountHandler(logger, accountService)
	baseHandler := handlers.NewBaseHandler(logger)
	limiter := pkg.NewLimiter(cfg.RateLimit, cfg.RateBurst, logger)

	// Router
	r := gin.Default()

	api := r.Group("/api/v1")
	api.Use(middleware.TraceID())
	api.Use(middleware.Metrics())
	api.Use(middleware.RateLimit(limiter))

	accountHandler.RegisterRoutes(api)
	baseHandler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	return srv, nil
}
