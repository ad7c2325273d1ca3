package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

func pendingOn(date time.Time) *entity.FollowUp {
	return &entity.FollowUp{ID: "f1", FollowUpDate: date, Status: entity.FollowUpStatusPending}
}

// El vencimiento compara solo la fecha: la hora se ignora.
func TestFollowUp_IsOverdue_SoloFecha(t *testing.T) {
	today := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

	yesterday := time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC)
	assert.True(t, pendingOn(yesterday).IsOverdue(today), "fecha anterior a hoy está vencida")

	sameDayEarlier := time.Date(2026, time.March, 15, 0, 1, 0, 0, time.UTC)
	assert.False(t, pendingOn(sameDayEarlier).IsOverdue(today), "el mismo día no cuenta como vencido aunque la hora ya pasó")

	tomorrow := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, pendingOn(tomorrow).IsOverdue(today))
}

// Solo los pendientes pueden estar vencidos.
func TestFollowUp_IsOverdue_SoloPendientes(t *testing.T) {
	today := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	past := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	completed := pendingOn(past)
	completed.Status = entity.FollowUpStatusCompleted
	assert.False(t, completed.IsOverdue(today))

	cancelled := pendingOn(past)
	cancelled.Status = entity.FollowUpStatusCancelled
	assert.False(t, cancelled.IsOverdue(today))
}

func TestFollowUp_IsPending(t *testing.T) {
	assert.True(t, pendingOn(time.Now()).IsPending())

	done := pendingOn(time.Now())
	done.Status = entity.FollowUpStatusCompleted
	assert.False(t, done.IsPending())
}

func TestValidFollowUpStatus(t *testing.T) {
	assert.True(t, entity.ValidFollowUpStatus(entity.FollowUpStatusPending))
	assert.True(t, entity.ValidFollowUpStatus(entity.FollowUpStatusCompleted))
	assert.True(t, entity.ValidFollowUpStatus(entity.FollowUpStatusCancelled))
	assert.False(t, entity.ValidFollowUpStatus("snoozed"))
}
