package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	leadRepo := postgres.NewLeadRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	contactRepo := postgres.NewContactPersonRepository(pool)
	followUpRepo := postgres.NewFollowUpRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Siembra de roles base: el catálogo en código es la fuente de verdad.
	if err := postgres.SeedCatalog(roleRepo); err != nil {
		log.Fatal().Err(err).Msg("siembra del catálogo de roles")
	}

	permissions := authz.NewPermissionService(userRepo, roleRepo)
	resolver := crm.NewParentResolver(leadRepo, customerRepo)

	convertLeadUC := crm.NewConvertLeadUseCase(txRunner, leadRepo, customerRepo, contactRepo)
	contactPersonUC := crm.NewContactPersonUseCase(txRunner, contactRepo, resolver)
	followUpUC := crm.NewFollowUpUseCase(followUpRepo, resolver)

	leadUC := usecase.NewLeadUseCase(leadRepo, customerRepo, txRunner)
	customerUC := usecase.NewCustomerUseCase(customerRepo, txRunner)
	businessUC := usecase.NewBusinessUseCase(businessRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, leadRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, customerRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		Permissions:     permissions,
		BusinessUC:      businessUC,
		LeadUC:          leadUC,
		ConvertLead:     convertLeadUC,
		CustomerUC:      customerUC,
		ServiceUC:       serviceUC,
		ProjectUC:       projectUC,
		ContactPersonUC: contactPersonUC,
		FollowUpUC:      followUpUC,
		UserUC:          userUC,
		RoleUC:          roleUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
