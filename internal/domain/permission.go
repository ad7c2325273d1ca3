package domain

// Catálogo estático de permisos y roles base. Se versiona junto al código y se
// siembra en la base de datos al arrancar el proceso (ver postgres.SeedCatalog);
// la DB es la copia operativa, este catálogo es la fuente de verdad.

// Nombres de permisos. El formato es "<verbo> <recurso en plural>".
const (
	PermViewBusinesses   = "view businesses"
	PermCreateBusinesses = "create businesses"
	PermEditBusinesses   = "edit businesses"
	PermDeleteBusinesses = "delete businesses"

	PermViewLeads    = "view leads"
	PermCreateLeads  = "create leads"
	PermEditLeads    = "edit leads"
	PermDeleteLeads  = "delete leads"
	PermConvertLeads = "convert leads"

	PermViewCustomers   = "view customers"
	PermCreateCustomers = "create customers"
	PermEditCustomers   = "edit customers"
	PermDeleteCustomers = "delete customers"

	PermViewServices   = "view services"
	PermCreateServices = "create services"
	PermEditServices   = "edit services"
	PermDeleteServices = "delete services"

	PermViewProjects   = "view projects"
	PermCreateProjects = "create projects"
	PermEditProjects   = "edit projects"
	PermDeleteProjects = "delete projects"

	PermViewContactPersons   = "view contact persons"
	PermManageContactPersons = "manage contact persons"

	PermViewFollowUps     = "view follow ups"
	PermManageFollowUps   = "manage follow ups"
	PermCompleteFollowUps = "complete follow ups"

	PermViewUsers   = "view users"
	PermCreateUsers = "create users"
	PermEditUsers   = "edit users"
	PermDeleteUsers = "delete users"

	PermViewRoles   = "view roles"
	PermCreateRoles = "create roles"
	PermEditRoles   = "edit roles"
	PermDeleteRoles = "delete roles"
)

// Roles base. super-admin, admin y user son roles de sistema: no se pueden eliminar.
const (
	RoleSuperAdmin = "super-admin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleSales      = "sales"
	RoleUser       = "user"
)

// systemRoles roles que la API de administración nunca permite borrar.
var systemRoles = map[string]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleUser:       true,
}

// IsSystemRole informa si el rol es un rol de sistema protegido.
func IsSystemRole(name string) bool {
	return systemRoles[name]
}

// AllPermissions devuelve el catálogo completo, en orden estable.
func AllPermissions() []string {
	return []string{
		PermViewBusinesses, PermCreateBusinesses, PermEditBusinesses, PermDeleteBusinesses,
		PermViewLeads, PermCreateLeads, PermEditLeads, PermDeleteLeads, PermConvertLeads,
		PermViewCustomers, PermCreateCustomers, PermEditCustomers, PermDeleteCustomers,
		PermViewServices, PermCreateServices, PermEditServices, PermDeleteServices,
		PermViewProjects, PermCreateProjects, PermEditProjects, PermDeleteProjects,
		PermViewContactPersons, PermManageContactPersons,
		PermViewFollowUps, PermManageFollowUps, PermCompleteFollowUps,
		PermViewUsers, PermCreateUsers, PermEditUsers, PermDeleteUsers,
		PermViewRoles, PermCreateRoles, PermEditRoles, PermDeleteRoles,
	}
}

// BaselineRoleGrants mapea cada rol base a sus permisos.
// super-admin recibe el catálogo completo; user es solo lectura.
func BaselineRoleGrants() map[string][]string {
	viewOnly := []string{
		PermViewBusinesses, PermViewLeads, PermViewCustomers, PermViewServices,
		PermViewProjects, PermViewContactPersons, PermViewFollowUps,
	}
	sales := []string{
		PermViewLeads, PermCreateLeads, PermEditLeads, PermConvertLeads,
		PermViewCustomers, PermViewServices,
		PermViewContactPersons, PermManageContactPersons,
		PermViewFollowUps, PermManageFollowUps, PermCompleteFollowUps,
	}
	manager := append(append([]string{}, viewOnly...),
		PermCreateLeads, PermEditLeads, PermConvertLeads,
		PermCreateCustomers, PermEditCustomers,
		PermCreateProjects, PermEditProjects,
		PermManageContactPersons,
		PermManageFollowUps, PermCompleteFollowUps,
		PermViewUsers,
	)
	// admin administra todo menos el ciclo de vida de roles (eso queda para super-admin).
	var admin []string
	for _, p := range AllPermissions() {
		switch p {
		case PermCreateRoles, PermEditRoles, PermDeleteRoles:
			continue
		}
		admin = append(admin, p)
	}
	return map[string][]string{
		RoleSuperAdmin: AllPermissions(),
		RoleAdmin:      admin,
		RoleManager:    manager,
		RoleSales:      sales,
		RoleUser:       viewOnly,
	}
}
