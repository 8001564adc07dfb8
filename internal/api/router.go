package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petessence/clinic-api/internal/api/handler"
	"github.com/petessence/clinic-api/internal/api/middleware"
	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/service"
	mongodb "github.com/petessence/clinic-api/internal/infrastructure/db/mongo"
	redisdb "github.com/petessence/clinic-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit queue is constructed in main so its lifecycle outlives requests.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit service.AuditQueue, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	apptRepo := mongodb.NewAppointmentRepository(db)
	petRepo := mongodb.NewPetRepository(db)
	vaccineRepo := mongodb.NewVaccineRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	slotLocker := redisdb.NewSlotLocker(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, log)
	apptService := service.NewAppointmentService(apptRepo, slotLocker, audit, log)
	petService := service.NewPetService(petRepo, log)
	vaccineService := service.NewVaccineService(vaccineRepo, petRepo, log)
	catalogService := service.NewCatalogService(catalogRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	apptHandler := handler.NewAppointmentHandler(apptService)
	petHandler := handler.NewPetHandler(petService)
	vaccineHandler := handler.NewVaccineHandler(vaccineService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes ---
	// Public signup always creates a client account; roles are assigned
	// through the gated user administration routes below.
	e.POST("/auth/register", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(jwtSecret))

	canBook := middleware.RequirePermission(domain.ActionBookAppointment)
	canEdit := middleware.RequirePermission(domain.ActionEditAppointment)
	canToggle := middleware.RequirePermission(domain.ActionToggleAppointment)
	canManage := middleware.RequirePermission(domain.ActionManageRegistry)
	canView := middleware.RequirePermission(domain.ActionViewCalendar)

	// Appointments. Booking and editing are veterinarian-only; every
	// authenticated role can read the calendar.
	v1.POST("/appointments", apptHandler.Create, canBook)
	v1.PUT("/appointments/:id", apptHandler.Update, canEdit)
	v1.PATCH("/appointments/:id/active", apptHandler.Toggle, canToggle)
	v1.GET("/appointments", apptHandler.List, canView)
	v1.GET("/appointments/:id", apptHandler.Get, canView)
	v1.GET("/calendar/:date", apptHandler.Calendar, canView)

	// Pet registry.
	v1.POST("/pets", petHandler.Create, canManage)
	v1.PUT("/pets/:id", petHandler.Update, canManage)
	v1.PATCH("/pets/:id/active", petHandler.Toggle, canManage)
	v1.GET("/pets", petHandler.List)
	v1.GET("/pets/:id", petHandler.Get)

	// Vaccination and deworming histories hang off the pet resource.
	v1.POST("/pets/:id/vaccinations", vaccineHandler.RecordVaccination, canManage)
	v1.GET("/pets/:id/vaccinations", vaccineHandler.PetVaccinations)
	v1.POST("/pets/:id/dewormings", vaccineHandler.RecordDeworming, canManage)
	v1.GET("/pets/:id/dewormings", vaccineHandler.PetDewormings)

	// Vaccine catalog.
	v1.POST("/vaccines", vaccineHandler.CreateVaccine, canManage)
	v1.PUT("/vaccines/:id", vaccineHandler.UpdateVaccine, canManage)
	v1.PATCH("/vaccines/:id/active", vaccineHandler.ToggleVaccine, canManage)
	v1.GET("/vaccines", vaccineHandler.ListVaccines)

	// Reference data: species, breeds, brands.
	v1.POST("/catalog/:kind", catalogHandler.Create, canManage)
	v1.PATCH("/catalog/:kind/:id/active", catalogHandler.Toggle, canManage)
	v1.GET("/catalog/:kind", catalogHandler.List)

	// Users and the veterinarian picker. Only this route can create
	// accounts with elevated roles.
	v1.POST("/users", authHandler.Register, canManage)
	v1.GET("/users", userHandler.List, canManage)
	v1.GET("/users/:id", userHandler.Get, canManage)
	v1.PUT("/users/:id", userHandler.Update, canManage)
	v1.PATCH("/users/:id/active", userHandler.Toggle, canManage)
	v1.GET("/veterinarians", userHandler.Veterinarians)

	return e
}
