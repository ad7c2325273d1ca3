package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.FollowUpRepository = (*FollowUpRepo)(nil)

const followUpColumns = `id, parent_kind, parent_id, follow_up_date, notes, status,
	created_by, completed_by, completed_at, created_at, updated_at`

// FollowUpRepo implementación de FollowUpRepository sobre PostgreSQL (usable con pool o tx).
type FollowUpRepo struct {
	q Querier
}

// NewFollowUpRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFollowUpRepository(q Querier) *FollowUpRepo {
	return &FollowUpRepo{q: q}
}

// Create persiste un nuevo seguimiento.
func (r *FollowUpRepo) Create(followUp *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (id, parent_kind, parent_id, follow_up_date, notes, status,
			created_by, completed_by, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		followUp.ID, string(followUp.Parent.Kind), followUp.Parent.ID, followUp.FollowUpDate,
		followUp.Notes, followUp.Status, followUp.CreatedBy, followUp.CompletedBy,
		followUp.CompletedAt, followUp.CreatedAt, followUp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert follow up: %w", err)
	}
	return nil
}

// GetByID obtiene un seguimiento por ID.
func (r *FollowUpRepo) GetByID(id string) (*entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	followUp, err := scanFollowUp(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get follow up: %w", err)
	}
	return followUp, nil
}

// ListByParent lista los seguimientos de un padre por fecha ascendente.
func (r *FollowUpRepo) ListByParent(parent entity.ParentRef) ([]*entity.FollowUp, error) {
	query := `
		SELECT ` + followUpColumns + `
		FROM follow_ups
		WHERE parent_kind = $1 AND parent_id = $2
		ORDER BY follow_up_date ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, string(parent.Kind), parent.ID)
	if err != nil {
		return nil, fmt.Errorf("list follow ups: %w", err)
	}
	defer rows.Close()
	return collectFollowUps(rows)
}

// ListOverdue lista seguimientos pendientes con fecha anterior a today (solo fecha).
func (r *FollowUpRepo) ListOverdue(today time.Time, limit, offset int) ([]*entity.FollowUp, error) {
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	query := `
		SELECT ` + followUpColumns + `
		FROM follow_ups
		WHERE status = $1 AND follow_up_date < $2
		ORDER BY follow_up_date ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, entity.FollowUpStatusPending, ref, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list follow ups vencidos: %w", err)
	}
	defer rows.Close()
	return collectFollowUps(rows)
}

// Update actualiza fecha, notas y estado de un seguimiento.
func (r *FollowUpRepo) Update(followUp *entity.FollowUp) error {
	query := `
		UPDATE follow_ups
		SET follow_up_date = $2, notes = $3, status = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		followUp.ID, followUp.FollowUpDate, followUp.Notes, followUp.Status, followUp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update follow up: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Complete marca como completado solo si el estado actual es pending (UPDATE
// condicional). Devuelve false si no había fila pendiente: ya estaba completado,
// cancelado, u otro escritor ganó la carrera.
func (r *FollowUpRepo) Complete(id, completedBy string, completedAt time.Time) (bool, error) {
	query := `
		UPDATE follow_ups
		SET status = $2, completed_by = $3, completed_at = $4, updated_at = $4
		WHERE id = $1 AND status = $5`
	tag, err := r.q.Exec(context.Background(), query,
		id, entity.FollowUpStatusCompleted, completedBy, completedAt, entity.FollowUpStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("completar follow up: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Cancel cancela un seguimiento pendiente sin sellar completador ni timestamp.
func (r *FollowUpRepo) Cancel(id string) error {
	query := `
		UPDATE follow_ups SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3`
	tag, err := r.q.Exec(context.Background(), query,
		id, entity.FollowUpStatusCancelled, entity.FollowUpStatusPending,
	)
	if err != nil {
		return fmt.Errorf("cancelar follow up: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFollowUpNotPending
	}
	return nil
}

// Delete elimina un seguimiento (hard delete).
func (r *FollowUpRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM follow_ups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete follow up: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByParent elimina todos los seguimientos del padre (cascada).
func (r *FollowUpRepo) DeleteByParent(parent entity.ParentRef) error {
	query := `DELETE FROM follow_ups WHERE parent_kind = $1 AND parent_id = $2`
	if _, err := r.q.Exec(context.Background(), query, string(parent.Kind), parent.ID); err != nil {
		return fmt.Errorf("delete follow ups por padre: %w", err)
	}
	return nil
}

func scanFollowUp(row pgx.Row) (*entity.FollowUp, error) {
	var f entity.FollowUp
	var kind string
	err := row.Scan(
		&f.ID, &kind, &f.Parent.ID, &f.FollowUpDate, &f.Notes, &f.Status,
		&f.CreatedBy, &f.CompletedBy, &f.CompletedAt, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Parent.Kind = entity.ParentKind(kind)
	return &f, nil
}

func collectFollowUps(rows pgx.Rows) ([]*entity.FollowUp, error) {
	var out []*entity.FollowUp
	for rows.Next() {
		followUp, err := scanFollowUp(rows)
		if err != nil {
			return nil, fmt.Errorf("scan follow up: %w", err)
		}
		out = append(out, followUp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar follow ups: %w", err)
	}
	return out, nil
}
