package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

func leadIn(status string) *entity.Lead {
	return &entity.Lead{ID: "l1", Name: "Acme", Status: status}
}

// Avanzar a cualquier etapa posterior del pipeline es válido.
func TestLead_AvanceACualquierEtapaPosterior(t *testing.T) {
	cases := []struct{ from, to string }{
		{entity.LeadStatusNew, entity.LeadStatusContacted},
		{entity.LeadStatusNew, entity.LeadStatusWon},
		{entity.LeadStatusContacted, entity.LeadStatusNegotiation},
		{entity.LeadStatusQualified, entity.LeadStatusWon},
		{entity.LeadStatusProposal, entity.LeadStatusNegotiation},
		{entity.LeadStatusNegotiation, entity.LeadStatusWon},
	}
	for _, c := range cases {
		assert.True(t, leadIn(c.from).CanTransitionTo(c.to), "%s → %s debe permitirse", c.from, c.to)
	}
}

// Retroceder exactamente un paso es válido; más de uno no.
func TestLead_RetrocesoDeUnPaso(t *testing.T) {
	assert.True(t, leadIn(entity.LeadStatusContacted).CanTransitionTo(entity.LeadStatusNew))
	assert.True(t, leadIn(entity.LeadStatusQualified).CanTransitionTo(entity.LeadStatusContacted))
	assert.True(t, leadIn(entity.LeadStatusNegotiation).CanTransitionTo(entity.LeadStatusProposal))

	assert.False(t, leadIn(entity.LeadStatusQualified).CanTransitionTo(entity.LeadStatusNew), "dos pasos atrás no")
	assert.False(t, leadIn(entity.LeadStatusNegotiation).CanTransitionTo(entity.LeadStatusContacted))
}

// lost es alcanzable desde cualquier etapa no terminal.
func TestLead_LostDesdeEtapasNoTerminales(t *testing.T) {
	for _, status := range []string{
		entity.LeadStatusNew, entity.LeadStatusContacted, entity.LeadStatusQualified,
		entity.LeadStatusProposal, entity.LeadStatusNegotiation,
	} {
		assert.True(t, leadIn(status).CanTransitionTo(entity.LeadStatusLost), "%s → lost", status)
	}
}

// won y lost no tienen salidas.
func TestLead_EstadosTerminalesSinSalidas(t *testing.T) {
	for _, terminal := range []string{entity.LeadStatusWon, entity.LeadStatusLost} {
		lead := leadIn(terminal)
		assert.True(t, lead.IsTerminal())
		for _, to := range []string{
			entity.LeadStatusNew, entity.LeadStatusContacted, entity.LeadStatusQualified,
			entity.LeadStatusProposal, entity.LeadStatusNegotiation, entity.LeadStatusWon, entity.LeadStatusLost,
		} {
			assert.False(t, lead.CanTransitionTo(to), "%s → %s debe rechazarse", terminal, to)
		}
	}
}

func TestLead_AcceptsContactPersons(t *testing.T) {
	business := &entity.Lead{EntityType: entity.EntityTypeBusiness}
	individual := &entity.Lead{EntityType: entity.EntityTypeIndividual}

	assert.True(t, business.AcceptsContactPersons())
	assert.False(t, individual.AcceptsContactPersons())
}
