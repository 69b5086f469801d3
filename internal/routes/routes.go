package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nassaupro/marketplace-api/internal/cache"
	"github.com/nassaupro/marketplace-api/internal/config"
	"github.com/nassaupro/marketplace-api/internal/handlers"
	infraRepo "github.com/nassaupro/marketplace-api/internal/infra/repository"
	"github.com/nassaupro/marketplace-api/internal/middleware"
	ucCategory "github.com/nassaupro/marketplace-api/internal/usecase/category"
	ucClient "github.com/nassaupro/marketplace-api/internal/usecase/client"
	ucService "github.com/nassaupro/marketplace-api/internal/usecase/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	categoryRepo := infraRepo.NewCategoryGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)

	listCache := cache.NewNoop()
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Printf("redis unavailable, list cache disabled: %v", err)
		} else {
			listCache = redisCache
		}
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createCategoryUC := ucCategory.NewCreateCategory(categoryRepo)
	updateCategoryUC := ucCategory.NewUpdateCategory(categoryRepo)

	createClientUC := ucClient.NewCreateClient(clientRepo)
	updateClientUC := ucClient.NewUpdateClient(clientRepo)

	createServiceUC := ucService.NewCreateService(
		serviceRepo,
		categoryRepo,
		clientRepo,
	)
	updateServiceUC := ucService.NewUpdateService(serviceRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	categoryHandler := handlers.NewCategoryHandler(
		categoryRepo,
		createCategoryUC,
		updateCategoryUC,
		listCache,
	)

	clientHandler := handlers.NewClientHandler(
		clientRepo,
		createClientUC,
		updateClientUC,
		listCache,
	)

	serviceHandler := handlers.NewServiceHandler(
		serviceRepo,
		createServiceUC,
		updateServiceUC,
		listCache,
	)

	// ======================================================
	// 🌐 ROTAS (JSON)
	// ======================================================
	categories := r.Group("/categories")
	{
		categories.GET("/list", categoryHandler.List)
		categories.GET("/list/:id", categoryHandler.GetByID)
		categories.POST("/create", categoryHandler.Create)
		categories.PUT("/change/:id", categoryHandler.Update)
		categories.DELETE("/delete/:id", categoryHandler.Delete)
	}

	clients := r.Group("/clients")
	{
		clients.GET("/list", clientHandler.List)
		clients.GET("/list/:id", clientHandler.GetByID)
		clients.POST("/create", clientHandler.Create)
		clients.PUT("/change/:id", clientHandler.Update)
		clients.DELETE("/delete/:id", clientHandler.Delete)
	}

	services := r.Group("/services")
	{
		services.GET("/list", serviceHandler.List)
		services.GET("/list/:id", serviceHandler.GetByID)
		services.POST("/create", serviceHandler.Create)
		services.PUT("/change/:id", serviceHandler.Update)
		services.DELETE("/delete/:id", serviceHandler.Delete)
	}
}
