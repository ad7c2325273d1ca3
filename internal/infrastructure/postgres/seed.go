package postgres

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// descripciones de los roles base sembrados.
var roleDescriptions = map[string]string{
	domain.RoleSuperAdmin: "Acceso total, incluida la administración de roles",
	domain.RoleAdmin:      "Administración completa excepto el ciclo de vida de roles",
	domain.RoleManager:    "Gestión del pipeline: leads, customers, projects y seguimientos",
	domain.RoleSales:      "Trabajo comercial sobre leads y su conversión",
	domain.RoleUser:       "Solo lectura",
}

// SeedCatalog siembra los roles base con sus permisos (upsert por nombre).
// Se ejecuta al arrancar: el catálogo en código es la fuente de verdad y un
// despliegue nuevo actualiza los permisos de los roles base sin migración.
func SeedCatalog(roleRepo repository.RoleRepository) error {
	grants := domain.BaselineRoleGrants()

	names := make([]string, 0, len(grants))
	for name := range grants {
		names = append(names, name)
	}
	sort.Strings(names)

	now := time.Now()
	for _, name := range names {
		role := &entity.Role{
			ID:          uuid.New().String(),
			Name:        name,
			Description: roleDescriptions[name],
			Permissions: grants[name],
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := roleRepo.Upsert(role); err != nil {
			return fmt.Errorf("sembrar rol %s: %w", name, err)
		}
	}
	return nil
}
