package server

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"plantcare.app/leafclinic/internal/config"
	"plantcare.app/leafclinic/internal/handler"
	"plantcare.app/leafclinic/internal/middleware"
	"plantcare.app/leafclinic/internal/repository"
	"plantcare.app/leafclinic/internal/service"
	"plantcare.app/leafclinic/pkg/storage"
)

// Server holds the wired application. All state is constructed here at
// startup and passed down explicitly; there are no package-level singletons.
type Server struct {
	engine  *gin.Engine
	catalog service.CatalogService
}

func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	diseaseRepo := repository.NewDiseaseRepository(db)

	fileStore := storage.NewDiskStore(cfg.UploadRoot)

	authSvc := service.NewAuthService(userRepo, cfg.SessionSecret, cfg.SessionTTL)
	uploadSvc := service.NewUploadService(historyRepo, fileStore)
	historySvc := service.NewHistoryService(historyRepo)
	catalogSvc := service.NewCatalogService(diseaseRepo, redisClient, cfg.SeedFile)

	authHandler := handler.NewAuthHandler(authSvc)
	dashboardHandler := handler.NewDashboardHandler(authSvc, uploadSvc)
	historyHandler := handler.NewHistoryHandler(historySvc)
	diseaseHandler := handler.NewDiseaseHandler(catalogSvc)
	pageHandler := handler.NewPageHandler(authSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.LoadHTMLGlob(cfg.TemplateGlob)

	authMiddleware := middleware.NewAuthMiddleware(cfg.SessionSecret)

	// Public routes
	router.GET("/", pageHandler.Home)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/signup", authHandler.ShowSignup)
	router.POST("/signup", authHandler.Signup)

	// Protected routes
	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/logout", authHandler.Logout)

		protected.GET("/dashboard", dashboardHandler.Show)
		protected.POST("/dashboard", dashboardHandler.Upload)

		protected.GET("/history", historyHandler.List)
		protected.GET("/delete", historyHandler.Delete)
		protected.POST("/delete", historyHandler.Delete)

		protected.GET("/diseases", diseaseHandler.ListAll)
		protected.GET("/disease", diseaseHandler.Search)
		protected.POST("/disease", diseaseHandler.Search)

		protected.GET("/aboutus", pageHandler.About)
		protected.GET("/profile", pageHandler.Profile)
	}

	return &Server{
		engine:  router,
		catalog: catalogSvc,
	}
}

// Catalog exposes the catalog service so main can seed before listening.
func (s *Server) Catalog() service.CatalogService {
	return s.catalog
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
