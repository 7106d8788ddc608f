package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/service"
)

type Loggers struct {
	Main      *zap.Logger
	Auth      *zap.Logger
	Equipment *zap.Logger
	Request   *zap.Logger
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, loggers.Main)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	historyRepo := repositories.NewEquipmentHistoryRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn, loggers.Request)
	fieldRepo := repositories.NewFieldRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)

	// --- 2. СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, loggers.Auth, &cfg.Auth)
	userService := services.NewUserService(userRepo, loggers.Main)
	equipmentService := services.NewEquipmentService(equipmentRepo, historyRepo, userRepo, txManager, loggers.Equipment)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, historyRepo, txManager, loggers.Request)
	fieldService := services.NewFieldService(fieldRepo, equipmentRepo, loggers.Main)
	reportService := services.NewReportService(reportRepo)
	dashboardService := services.NewDashboardService(requestRepo, equipmentRepo)

	// --- 3. КОНТРОЛЛЕРЫ ---
	authMW := middleware.NewAuthMiddleware(jwtSvc, authService, loggers.Auth)
	authCtrl := controllers.NewAuthController(authService, jwtSvc, loggers.Auth)
	userCtrl := controllers.NewUserController(userService, loggers.Main)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, loggers.Equipment)
	requestCtrl := controllers.NewRequestController(requestService, loggers.Request)
	fieldCtrl := controllers.NewFieldController(fieldService, loggers.Main)
	reportCtrl := controllers.NewReportController(reportService, loggers.Main)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, loggers.Main)

	// --- 4. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authCtrl, authMW)
	runUserRouter(secureGroup, userCtrl, authMW)
	runEquipmentRouter(secureGroup, equipmentCtrl, authMW)
	runRequestRouter(secureGroup, requestCtrl, authMW)
	runFieldRouter(secureGroup, fieldCtrl, authMW)
	runReportRouter(secureGroup, reportCtrl, authMW)
	runDashboardRouter(secureGroup, dashboardCtrl, authMW)

	loggers.Main.Info("InitRouter: Все маршруты успешно созданы")
}
