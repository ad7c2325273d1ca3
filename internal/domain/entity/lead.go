package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de entidad: determinan si el registro admite personas de contacto.
const (
	EntityTypeIndividual = "individual"
	EntityTypeBusiness   = "business"
)

// ValidEntityType informa si el tipo de entidad es válido.
func ValidEntityType(t string) bool {
	return t == EntityTypeIndividual || t == EntityTypeBusiness
}

// Orígenes válidos de un lead.
const (
	LeadSourceWebsite       = "website"
	LeadSourceReferral      = "referral"
	LeadSourceColdCall      = "cold_call"
	LeadSourceSocialMedia   = "social_media"
	LeadSourceAdvertisement = "advertisement"
	LeadSourceOther         = "other"
)

// Estados del pipeline de ventas. won y lost son terminales.
const (
	LeadStatusNew         = "new"
	LeadStatusContacted   = "contacted"
	LeadStatusQualified   = "qualified"
	LeadStatusProposal    = "proposal"
	LeadStatusNegotiation = "negotiation"
	LeadStatusWon         = "won"
	LeadStatusLost        = "lost"
)

// leadSources set de orígenes válidos.
var leadSources = map[string]bool{
	LeadSourceWebsite: true, LeadSourceReferral: true, LeadSourceColdCall: true,
	LeadSourceSocialMedia: true, LeadSourceAdvertisement: true, LeadSourceOther: true,
}

// ValidLeadSource informa si el origen es válido.
func ValidLeadSource(s string) bool { return leadSources[s] }

// LeadTransitions transiciones de estado permitidas. Se permite avanzar a
// cualquier etapa posterior del pipeline, retroceder un paso, y pasar a lost
// desde cualquier etapa no terminal. Los estados terminales no tienen salidas.
var LeadTransitions = map[string]map[string]bool{
	LeadStatusNew:         {LeadStatusContacted: true, LeadStatusQualified: true, LeadStatusProposal: true, LeadStatusNegotiation: true, LeadStatusWon: true, LeadStatusLost: true},
	LeadStatusContacted:   {LeadStatusNew: true, LeadStatusQualified: true, LeadStatusProposal: true, LeadStatusNegotiation: true, LeadStatusWon: true, LeadStatusLost: true},
	LeadStatusQualified:   {LeadStatusContacted: true, LeadStatusProposal: true, LeadStatusNegotiation: true, LeadStatusWon: true, LeadStatusLost: true},
	LeadStatusProposal:    {LeadStatusQualified: true, LeadStatusNegotiation: true, LeadStatusWon: true, LeadStatusLost: true},
	LeadStatusNegotiation: {LeadStatusProposal: true, LeadStatusWon: true, LeadStatusLost: true},
	LeadStatusWon:         {},
	LeadStatusLost:        {},
}

// ValidLeadStatus informa si el estado pertenece al pipeline.
func ValidLeadStatus(s string) bool {
	_, ok := LeadTransitions[s]
	return ok
}

// Lead prospecto de venta aún no convertido.
type Lead struct {
	ID             string
	Name           string
	EntityType     string // individual | business
	Email          string
	Phone          string
	Company        string
	Source         string
	Status         string
	EstimatedValue decimal.Decimal
	Notes          string
	AssignedTo     *string // usuario asignado, opcional
	BusinessID     *string
	ServiceID      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // soft delete
}

// CanTransitionTo informa si el lead puede pasar al estado indicado.
func (l *Lead) CanTransitionTo(status string) bool {
	nexts, ok := LeadTransitions[l.Status]
	if !ok {
		return false
	}
	return nexts[status]
}

// IsTerminal informa si el lead está en un estado final del pipeline.
func (l *Lead) IsTerminal() bool {
	return l.Status == LeadStatusWon || l.Status == LeadStatusLost
}

// IsWon informa si el lead fue ganado (requisito para conversión).
func (l *Lead) IsWon() bool { return l.Status == LeadStatusWon }

// AcceptsContactPersons solo los padres de tipo business admiten personas de contacto.
func (l *Lead) AcceptsContactPersons() bool { return l.EntityType == EntityTypeBusiness }
