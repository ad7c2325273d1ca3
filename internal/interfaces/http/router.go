package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	Permissions     *authz.PermissionService
	BusinessUC      *usecase.BusinessUseCase
	LeadUC          *usecase.LeadUseCase
	ConvertLead     *crm.ConvertLeadUseCase
	CustomerUC      *usecase.CustomerUseCase
	ServiceUC       *usecase.ServiceUseCase
	ProjectUC       *usecase.ProjectUseCase
	ContactPersonUC *crm.ContactPersonUseCase
	FollowUpUC      *crm.FollowUpUseCase
	UserUC          *usecase.UserUseCase
	RoleUC          *usecase.RoleUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	perms := deps.Permissions

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Businesses
	businesses := protected.Group("/businesses")
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businesses.Get("/", RequirePermission(domain.PermViewBusinesses, perms), businessHandler.List)
	businesses.Post("/", RequirePermission(domain.PermCreateBusinesses, perms), businessHandler.Create)
	businesses.Get("/:id", RequirePermission(domain.PermViewBusinesses, perms), businessHandler.GetByID)
	businesses.Put("/:id", RequirePermission(domain.PermEditBusinesses, perms), businessHandler.Update)
	businesses.Delete("/:id", RequirePermission(domain.PermDeleteBusinesses, perms), businessHandler.Delete)

	// Leads. La conversión resuelve el actor y decide en el caso de uso
	// (permiso + gate won/ya-convertido).
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC, deps.ConvertLead)
	leads.Get("/", RequirePermission(domain.PermViewLeads, perms), leadHandler.List)
	leads.Post("/", RequirePermission(domain.PermCreateLeads, perms), leadHandler.Create)
	leads.Get("/:id", RequirePermission(domain.PermViewLeads, perms), leadHandler.GetByID)
	leads.Put("/:id", RequirePermission(domain.PermEditLeads, perms), leadHandler.Update)
	leads.Patch("/:id/status", RequirePermission(domain.PermEditLeads, perms), leadHandler.ChangeStatus)
	leads.Post("/:id/convert", ResolveActor(perms), leadHandler.Convert)
	leads.Delete("/:id", RequirePermission(domain.PermDeleteLeads, perms), leadHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ProjectUC)
	customers.Get("/", RequirePermission(domain.PermViewCustomers, perms), customerHandler.List)
	customers.Post("/", RequirePermission(domain.PermCreateCustomers, perms), customerHandler.Create)
	customers.Get("/:id", RequirePermission(domain.PermViewCustomers, perms), customerHandler.GetByID)
	customers.Get("/:id/projects", RequirePermission(domain.PermViewProjects, perms), customerHandler.ListProjects)
	customers.Put("/:id", RequirePermission(domain.PermEditCustomers, perms), customerHandler.Update)
	customers.Delete("/:id", RequirePermission(domain.PermDeleteCustomers, perms), customerHandler.Delete)

	// Services
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", RequirePermission(domain.PermViewServices, perms), serviceHandler.List)
	services.Post("/", RequirePermission(domain.PermCreateServices, perms), serviceHandler.Create)
	services.Get("/:id", RequirePermission(domain.PermViewServices, perms), serviceHandler.GetByID)
	services.Put("/:id", RequirePermission(domain.PermEditServices, perms), serviceHandler.Update)
	services.Delete("/:id", RequirePermission(domain.PermDeleteServices, perms), serviceHandler.Delete)

	// Projects
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", RequirePermission(domain.PermViewProjects, perms), projectHandler.List)
	projects.Post("/", RequirePermission(domain.PermCreateProjects, perms), projectHandler.Create)
	projects.Get("/:id", RequirePermission(domain.PermViewProjects, perms), projectHandler.GetByID)
	projects.Put("/:id", RequirePermission(domain.PermEditProjects, perms), projectHandler.Update)
	projects.Delete("/:id", RequirePermission(domain.PermDeleteProjects, perms), projectHandler.Delete)

	// Contact persons y follow ups: el caso de uso decide con el actor.
	contacts := protected.Group("/contact-persons", ResolveActor(perms))
	contactHandler := NewContactPersonHandler(deps.ContactPersonUC)
	contacts.Get("/", contactHandler.ListByParent)
	contacts.Post("/", contactHandler.Create)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Post("/:id/set-primary", contactHandler.SetPrimary)
	contacts.Delete("/:id", contactHandler.Delete)

	followUps := protected.Group("/follow-ups", ResolveActor(perms))
	followUpHandler := NewFollowUpHandler(deps.FollowUpUC)
	followUps.Get("/", followUpHandler.ListByParent)
	followUps.Get("/overdue", followUpHandler.ListOverdue)
	followUps.Post("/", followUpHandler.Create)
	followUps.Put("/:id", followUpHandler.Update)
	followUps.Post("/:id/complete", followUpHandler.Complete)
	followUps.Post("/:id/cancel", followUpHandler.Cancel)
	followUps.Delete("/:id", followUpHandler.Delete)

	// Users y roles: administración, decisiones en el caso de uso
	// (atajos de propiedad, protección de roles de sistema).
	users := protected.Group("/users", ResolveActor(perms))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	roles := protected.Group("/roles", ResolveActor(perms))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Get("/permissions", roleHandler.ListPermissions)
	roles.Post("/", roleHandler.Create)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)
}
