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

var _ repository.ContactPersonRepository = (*ContactPersonRepo)(nil)

const contactColumns = `id, parent_kind, parent_id, name, email, mobile, designation, is_primary,
	created_at, updated_at`

// ContactPersonRepo implementación de ContactPersonRepository sobre PostgreSQL
// (usable con pool o tx). El padre polimórfico se persiste como dos columnas
// (parent_kind, parent_id), sin FK a una tabla concreta.
type ContactPersonRepo struct {
	q Querier
}

// NewContactPersonRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactPersonRepository(q Querier) *ContactPersonRepo {
	return &ContactPersonRepo{q: q}
}

// Create persiste una nueva persona de contacto.
func (r *ContactPersonRepo) Create(contact *entity.ContactPerson) error {
	query := `
		INSERT INTO contact_persons (id, parent_kind, parent_id, name, email, mobile,
			designation, is_primary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		contact.ID, string(contact.Parent.Kind), contact.Parent.ID, contact.Name,
		contact.Email, contact.Mobile, contact.Designation, contact.IsPrimary,
		contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact person: %w", err)
	}
	return nil
}

// GetByID obtiene una persona de contacto por ID.
func (r *ContactPersonRepo) GetByID(id string) (*entity.ContactPerson, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_persons WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	contact, err := scanContactPerson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact person: %w", err)
	}
	return contact, nil
}

// ListByParent lista las personas de contacto de un padre, la primaria primero.
func (r *ContactPersonRepo) ListByParent(parent entity.ParentRef) ([]*entity.ContactPerson, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contact_persons
		WHERE parent_kind = $1 AND parent_id = $2
		ORDER BY is_primary DESC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, string(parent.Kind), parent.ID)
	if err != nil {
		return nil, fmt.Errorf("list contact persons: %w", err)
	}
	defer rows.Close()

	var out []*entity.ContactPerson
	for rows.Next() {
		contact, err := scanContactPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact person: %w", err)
		}
		out = append(out, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar contact persons: %w", err)
	}
	return out, nil
}

// Update actualiza una persona de contacto existente.
func (r *ContactPersonRepo) Update(contact *entity.ContactPerson) error {
	query := `
		UPDATE contact_persons
		SET name = $2, email = $3, mobile = $4, designation = $5, is_primary = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.Name, contact.Email, contact.Mobile, contact.Designation,
		contact.IsPrimary, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una persona de contacto (hard delete).
func (r *ContactPersonRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM contact_persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByParent elimina todas las personas de contacto del padre (cascada).
func (r *ContactPersonRepo) DeleteByParent(parent entity.ParentRef) error {
	query := `DELETE FROM contact_persons WHERE parent_kind = $1 AND parent_id = $2`
	if _, err := r.q.Exec(context.Background(), query, string(parent.Kind), parent.ID); err != nil {
		return fmt.Errorf("delete contact persons por padre: %w", err)
	}
	return nil
}

// ClearPrimary quita is_primary de todos los contactos del padre.
func (r *ContactPersonRepo) ClearPrimary(parent entity.ParentRef) error {
	query := `
		UPDATE contact_persons SET is_primary = FALSE, updated_at = now()
		WHERE parent_kind = $1 AND parent_id = $2 AND is_primary = TRUE`
	if _, err := r.q.Exec(context.Background(), query, string(parent.Kind), parent.ID); err != nil {
		return fmt.Errorf("clear primary: %w", err)
	}
	return nil
}

// LockParent toma un lock de fila (FOR UPDATE) sobre la fila del propio padre
// (lead o customer). Dentro de una transacción serializa los cambios de contacto
// primario; dos escritores concurrentes sobre el mismo padre se ejecutan en
// serie. El lock va sobre el padre y no sobre los contactos: un FOR UPDATE
// sobre el set de contactos no bloquea nada cuando el set está vacío, y dos
// primeros contactos primarios concurrentes entrarían ambos.
func (r *ContactPersonRepo) LockParent(parent entity.ParentRef) error {
	var query string
	switch parent.Kind {
	case entity.ParentLead:
		query = `SELECT id FROM leads WHERE id = $1 FOR UPDATE`
	case entity.ParentCustomer:
		query = `SELECT id FROM customers WHERE id = $1 FOR UPDATE`
	default:
		return domain.ErrInvalidInput
	}
	if _, err := r.q.Exec(context.Background(), query, parent.ID); err != nil {
		return fmt.Errorf("lock parent: %w", err)
	}
	return nil
}

func scanContactPerson(row pgx.Row) (*entity.ContactPerson, error) {
	var c entity.ContactPerson
	var kind string
	err := row.Scan(
		&c.ID, &kind, &c.Parent.ID, &c.Name, &c.Email, &c.Mobile, &c.Designation,
		&c.IsPrimary, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Parent.Kind = entity.ParentKind(kind)
	return &c, nil
}
