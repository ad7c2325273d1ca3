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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, entity_type, email, phone, company, address, city, state,
	country, postal_code, status, notes, assigned_to, business_id, converted_from_lead_id,
	created_at, updated_at, deleted_at`

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
// La tabla tiene un índice único sobre converted_from_lead_id: la relación con el
// lead de origen es 1:1 y la garantiza el esquema además del guard de conversión.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo customer.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, entity_type, email, phone, company, address, city, state,
			country, postal_code, status, notes, assigned_to, business_id, converted_from_lead_id,
			search_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.EntityType, customer.Email, customer.Phone,
		customer.Company, customer.Address, customer.City, customer.State, customer.Country,
		customer.PostalCode, customer.Status, customer.Notes, customer.AssignedTo,
		customer.BusinessID, customer.ConvertedFromLeadID,
		customerSearchText(customer), customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un customer por ID; excluye los eliminados.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND deleted_at IS NULL`
	row := r.q.QueryRow(context.Background(), query, id)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

// GetByConvertedFromLead devuelve el customer creado a partir del lead, o nil.
func (r *CustomerRepo) GetByConvertedFromLead(leadID string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE converted_from_lead_id = $1 AND deleted_at IS NULL`
	row := r.q.QueryRow(context.Background(), query, leadID)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer por lead: %w", err)
	}
	return customer, nil
}

// List lista customers con paginación, del más reciente al más antiguo.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// Search busca customers cuyo texto normalizado contiene el término (ya
// normalizado por el caso de uso).
func (r *CustomerRepo) Search(query string, limit, offset int) ([]*entity.Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE deleted_at IS NULL AND search_text LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), sql, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// Update actualiza un customer existente y refresca su search_text.
// No toca entity_type ni converted_from_lead_id.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, company = $5, address = $6, city = $7,
			state = $8, country = $9, postal_code = $10, status = $11, notes = $12,
			assigned_to = $13, business_id = $14, search_text = $15, updated_at = $16
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Company,
		customer.Address, customer.City, customer.State, customer.Country, customer.PostalCode,
		customer.Status, customer.Notes, customer.AssignedTo, customer.BusinessID,
		customerSearchText(customer), customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete hace soft delete del customer.
func (r *CustomerRepo) Delete(id string) error {
	query := `UPDATE customers SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func customerSearchText(c *entity.Customer) string {
	return search.Normalize(strings.Join([]string{c.Name, c.Email, c.Company}, " "))
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.EntityType, &c.Email, &c.Phone, &c.Company, &c.Address, &c.City,
		&c.State, &c.Country, &c.PostalCode, &c.Status, &c.Notes, &c.AssignedTo,
		&c.BusinessID, &c.ConvertedFromLeadID, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar customers: %w", err)
	}
	return out, nil
}
