package routes

import (
	"net/http"

	"review-cycle-backend/internal/api/handlers"
	"review-cycle-backend/internal/api/middleware"
	"review-cycle-backend/internal/config"
	"review-cycle-backend/internal/lock"
	"review-cycle-backend/internal/notification"
	"review-cycle-backend/internal/repository"
	"review-cycle-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the infrastructure pieces chosen at startup
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config
	Locker lock.Locker
	Sender notification.Sender
	// Cache is pinged by the health endpoints; nil when Redis is not configured
	Cache handlers.Pinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(deps.Config))

	validator := validator.New()

	// Repositories
	repos := repository.NewRepositories(deps.DB)
	txManager := repository.NewTransactionManager(deps.DB)

	// Services
	notifier := notification.NewPeerEvaluationNotifier(deps.Sender, deps.Config.PeerEvaluationURL)
	cycleService := service.NewEvaluationCycleService(txManager, repos.Employees, deps.Locker, service.NewPeerPairingGenerator(), notifier)
	periodService := service.NewPeriodService(repos.Periods, txManager, deps.Locker, cycleService, validator)
	teamEvaluationService := service.NewTeamEvaluationService(repos.Periods, repos.TeamEvaluations, txManager)
	peerEvaluationService := service.NewPeerEvaluationService(repos.Periods, repos.Employees, repos.PeerEvaluations, repos.Keywords, txManager, validator)
	tempEvaluationService := service.NewTempEvaluationService(repos.TeamEvaluations, repos.Employees, repos.TempEvaluations, validator)

	// Handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Cache)
	periodHandler := handlers.NewPeriodHandler(periodService, cycleService, peerEvaluationService, teamEvaluationService)
	teamEvaluationHandler := handlers.NewTeamEvaluationHandler(teamEvaluationService, tempEvaluationService)
	peerEvaluationHandler := handlers.NewPeerEvaluationHandler(peerEvaluationService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if !deps.Config.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/api/v1")
	RegisterAPIRoutes(v1, periodHandler, teamEvaluationHandler, peerEvaluationHandler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}

// RegisterAPIRoutes mounts the evaluation endpoints on group
func RegisterAPIRoutes(group *gin.RouterGroup, periodHandler *handlers.PeriodHandler, teamEvaluationHandler *handlers.TeamEvaluationHandler, peerEvaluationHandler *handlers.PeerEvaluationHandler) {
	periods := group.Group("/admin/periods")
	{
		periods.POST("", periodHandler.CreatePeriod)
		periods.GET("/available", periodHandler.GetAvailablePeriods)
		periods.PUT("/:id", periodHandler.UpdatePeriod)
		periods.PUT("/:id/next-phase", periodHandler.AdvancePhase)
		periods.POST("/:id/peer-evaluation", periodHandler.OpenPeerEvaluation)
		periods.GET("/:id/peer-evaluation/completed", periodHandler.IsPeerEvaluationCompleted)
		periods.GET("/:id/team-evaluation/submitted", periodHandler.IsManagerEvaluationSubmitted)
	}

	teamEvaluations := group.Group("/team-evaluations")
	{
		teamEvaluations.POST("/:id/submit", teamEvaluationHandler.Submit)
		teamEvaluations.PUT("/:id/temp-evaluations/:empNo", teamEvaluationHandler.UpdateTempEvaluation)
	}

	peerEvaluations := group.Group("/peer-evaluations")
	{
		peerEvaluations.GET("", peerEvaluationHandler.GetStatusList)
		peerEvaluations.GET("/keywords", peerEvaluationHandler.GetSystemKeywords)
		peerEvaluations.GET("/:id", peerEvaluationHandler.GetDetail)
		peerEvaluations.POST("/:id/submit", peerEvaluationHandler.Submit)
	}
}
