package crm

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// TxRunner ejecuta funciones dentro de una transacción con repos atados a la tx.
// Lo implementa postgres.TxRunner; los tests usan un runner en memoria.
type TxRunner interface {
	// RunConversion transacción de la conversión lead→customer: alta del customer
	// más la copia de sus personas de contacto, todo o nada.
	RunConversion(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		contactRepo repository.ContactPersonRepository,
	) error) error

	// RunContacts transacción sobre el set de contactos de un padre. El callback
	// debe tomar el lock del padre (LockParent) antes de tocar is_primary.
	RunContacts(ctx context.Context, fn func(
		contactRepo repository.ContactPersonRepository,
	) error) error

	// RunCascade transacción para borrados con cascada a contactos y seguimientos.
	RunCascade(ctx context.Context, fn func(
		leadRepo repository.LeadRepository,
		customerRepo repository.CustomerRepository,
		contactRepo repository.ContactPersonRepository,
		followUpRepo repository.FollowUpRepository,
	) error) error
}
