package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación de RoleRepository sobre PostgreSQL (usable con pool o tx).
// Los permisos se guardan como text[]; el nombre del rol es único.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, description, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.Permissions, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `
		SELECT id, name, description, permissions, created_at, updated_at
		FROM roles WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	role, err := scanRole(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

// GetByName obtiene un rol por nombre.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	query := `
		SELECT id, name, description, permissions, created_at, updated_at
		FROM roles WHERE name = $1`
	row := r.q.QueryRow(context.Background(), query, name)
	role, err := scanRole(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role por nombre: %w", err)
	}
	return role, nil
}

// GetByNames resuelve varios roles de una vez (cálculo del permiso efectivo).
// Los nombres no existentes simplemente no aparecen en el resultado.
func (r *RoleRepo) GetByNames(names []string) ([]*entity.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, description, permissions, created_at, updated_at
		FROM roles WHERE name = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, names)
	if err != nil {
		return nil, fmt.Errorf("get roles por nombres: %w", err)
	}
	defer rows.Close()
	return collectRoles(rows)
}

// List lista roles con paginación por nombre.
func (r *RoleRepo) List(limit, offset int) ([]*entity.Role, error) {
	query := `
		SELECT id, name, description, permissions, created_at, updated_at
		FROM roles
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	return collectRoles(rows)
}

// Update actualiza descripción y permisos de un rol.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles
		SET description = $2, permissions = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		role.ID, role.Description, role.Permissions, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un rol (hard delete). La protección de roles de sistema vive
// en el caso de uso, no aquí.
func (r *RoleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert inserta o actualiza por nombre; lo usa la siembra del catálogo al arrancar.
func (r *RoleRepo) Upsert(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, description, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE
		SET description = EXCLUDED.description,
			permissions = EXCLUDED.permissions,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.Permissions, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert role: %w", err)
	}
	return nil
}

func scanRole(row pgx.Row) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(
		&role.ID, &role.Name, &role.Description, &role.Permissions,
		&role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func collectRoles(rows pgx.Rows) ([]*entity.Role, error) {
	var out []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar roles: %w", err)
	}
	return out, nil
}
