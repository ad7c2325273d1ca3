package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/search"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

const leadColumns = `id, name, entity_type, email, phone, company, source, status,
	estimated_value, notes, assigned_to, business_id, service_id,
	created_at, updated_at, deleted_at`

// LeadRepo implementación de LeadRepository sobre PostgreSQL (usable con pool o tx).
// Mantiene la columna search_text normalizada (sin acentos, minúsculas) para la búsqueda.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, entity_type, email, phone, company, source, status,
			estimated_value, notes, assigned_to, business_id, service_id,
			search_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.EntityType, lead.Email, lead.Phone, lead.Company,
		lead.Source, lead.Status, lead.EstimatedValue, lead.Notes,
		lead.AssignedTo, lead.BusinessID, lead.ServiceID,
		leadSearchText(lead), lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID; excluye los eliminados.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1 AND deleted_at IS NULL`
	row := r.q.QueryRow(context.Background(), query, id)
	lead, err := scanLead(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

// List lista leads con paginación, del más reciente al más antiguo.
func (r *LeadRepo) List(limit, offset int) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	return collectLeads(rows)
}

// Search busca leads cuyo texto normalizado contiene el término (ya normalizado
// por el caso de uso).
func (r *LeadRepo) Search(query string, limit, offset int) ([]*entity.Lead, error) {
	sql := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE deleted_at IS NULL AND search_text LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), sql, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search leads: %w", err)
	}
	defer rows.Close()
	return collectLeads(rows)
}

// Update actualiza un lead existente y refresca su search_text.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, entity_type = $3, email = $4, phone = $5, company = $6,
			source = $7, status = $8, estimated_value = $9, notes = $10,
			assigned_to = $11, business_id = $12, service_id = $13,
			search_text = $14, updated_at = $15
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.EntityType, lead.Email, lead.Phone, lead.Company,
		lead.Source, lead.Status, lead.EstimatedValue, lead.Notes,
		lead.AssignedTo, lead.BusinessID, lead.ServiceID,
		leadSearchText(lead), lead.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete hace soft delete del lead.
func (r *LeadRepo) Delete(id string) error {
	query := `UPDATE leads SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClearService anula service_id en todos los leads que referencian el service.
func (r *LeadRepo) ClearService(serviceID string) error {
	query := `UPDATE leads SET service_id = NULL, updated_at = now() WHERE service_id = $1`
	if _, err := r.q.Exec(context.Background(), query, serviceID); err != nil {
		return fmt.Errorf("clear service en leads: %w", err)
	}
	return nil
}

func leadSearchText(l *entity.Lead) string {
	return search.Normalize(strings.Join([]string{l.Name, l.Email, l.Company}, " "))
}

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID, &l.Name, &l.EntityType, &l.Email, &l.Phone, &l.Company, &l.Source, &l.Status,
		&l.EstimatedValue, &l.Notes, &l.AssignedTo, &l.BusinessID, &l.ServiceID,
		&l.CreatedAt, &l.UpdatedAt, &l.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func collectLeads(rows pgx.Rows) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar leads: %w", err)
	}
	return out, nil
}
