package crm_test

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeLeadRepo struct {
	leads map[string]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*entity.Lead)}
}

func (r *fakeLeadRepo) Create(lead *entity.Lead) error {
	r.leads[lead.ID] = lead
	return nil
}

func (r *fakeLeadRepo) GetByID(id string) (*entity.Lead, error) {
	lead, ok := r.leads[id]
	if !ok || lead.DeletedAt != nil {
		return nil, nil
	}
	return lead, nil
}

func (r *fakeLeadRepo) List(limit, offset int) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.leads {
		if l.DeletedAt == nil {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) Search(query string, limit, offset int) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.leads {
		if l.DeletedAt == nil && strings.Contains(strings.ToLower(l.Name), query) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) Update(lead *entity.Lead) error {
	if _, ok := r.leads[lead.ID]; !ok {
		return domain.ErrNotFound
	}
	r.leads[lead.ID] = lead
	return nil
}

func (r *fakeLeadRepo) Delete(id string) error {
	lead, ok := r.leads[id]
	if !ok || lead.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	lead.DeletedAt = &now
	return nil
}

func (r *fakeLeadRepo) ClearService(serviceID string) error {
	for _, l := range r.leads {
		if l.ServiceID != nil && *l.ServiceID == serviceID {
			l.ServiceID = nil
		}
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(customer *entity.Customer) error {
	if customer.ConvertedFromLeadID != nil {
		for _, c := range r.customers {
			if c.ConvertedFromLeadID != nil && *c.ConvertedFromLeadID == *customer.ConvertedFromLeadID {
				return domain.ErrDuplicate
			}
		}
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok || customer.DeletedAt != nil {
		return nil, nil
	}
	return customer, nil
}

func (r *fakeCustomerRepo) GetByConvertedFromLead(leadID string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.DeletedAt == nil && c.ConvertedFromLeadID != nil && *c.ConvertedFromLeadID == leadID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Search(query string, limit, offset int) ([]*entity.Customer, error) {
	return r.List(limit, offset)
}

func (r *fakeCustomerRepo) Update(customer *entity.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	customer, ok := r.customers[id]
	if !ok || customer.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	customer.DeletedAt = &now
	return nil
}

type fakeContactRepo struct {
	contacts map[string]*entity.ContactPerson
	ops      []string // traza de operaciones mutantes, para asertar el orden del lock
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*entity.ContactPerson)}
}

func (r *fakeContactRepo) Create(contact *entity.ContactPerson) error {
	r.ops = append(r.ops, "create")
	r.contacts[contact.ID] = contact
	return nil
}

func (r *fakeContactRepo) GetByID(id string) (*entity.ContactPerson, error) {
	contact, ok := r.contacts[id]
	if !ok {
		return nil, nil
	}
	return contact, nil
}

func (r *fakeContactRepo) ListByParent(parent entity.ParentRef) ([]*entity.ContactPerson, error) {
	var out []*entity.ContactPerson
	for _, c := range r.contacts {
		if c.Parent == parent {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) Update(contact *entity.ContactPerson) error {
	if _, ok := r.contacts[contact.ID]; !ok {
		return domain.ErrNotFound
	}
	r.contacts[contact.ID] = contact
	return nil
}

func (r *fakeContactRepo) Delete(id string) error {
	if _, ok := r.contacts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}

func (r *fakeContactRepo) DeleteByParent(parent entity.ParentRef) error {
	for id, c := range r.contacts {
		if c.Parent == parent {
			delete(r.contacts, id)
		}
	}
	return nil
}

func (r *fakeContactRepo) ClearPrimary(parent entity.ParentRef) error {
	r.ops = append(r.ops, "clear-primary")
	for _, c := range r.contacts {
		if c.Parent == parent {
			c.IsPrimary = false
		}
	}
	return nil
}

func (r *fakeContactRepo) LockParent(parent entity.ParentRef) error {
	r.ops = append(r.ops, "lock-parent")
	return nil
}

type fakeFollowUpRepo struct {
	followUps map[string]*entity.FollowUp
}

func newFakeFollowUpRepo() *fakeFollowUpRepo {
	return &fakeFollowUpRepo{followUps: make(map[string]*entity.FollowUp)}
}

func (r *fakeFollowUpRepo) Create(followUp *entity.FollowUp) error {
	r.followUps[followUp.ID] = followUp
	return nil
}

func (r *fakeFollowUpRepo) GetByID(id string) (*entity.FollowUp, error) {
	followUp, ok := r.followUps[id]
	if !ok {
		return nil, nil
	}
	return followUp, nil
}

func (r *fakeFollowUpRepo) ListByParent(parent entity.ParentRef) ([]*entity.FollowUp, error) {
	var out []*entity.FollowUp
	for _, f := range r.followUps {
		if f.Parent == parent {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFollowUpRepo) ListOverdue(today time.Time, limit, offset int) ([]*entity.FollowUp, error) {
	var out []*entity.FollowUp
	for _, f := range r.followUps {
		if f.IsOverdue(today) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFollowUpRepo) Update(followUp *entity.FollowUp) error {
	if _, ok := r.followUps[followUp.ID]; !ok {
		return domain.ErrNotFound
	}
	r.followUps[followUp.ID] = followUp
	return nil
}

func (r *fakeFollowUpRepo) Complete(id, completedBy string, completedAt time.Time) (bool, error) {
	followUp, ok := r.followUps[id]
	if !ok || followUp.Status != entity.FollowUpStatusPending {
		return false, nil
	}
	followUp.Status = entity.FollowUpStatusCompleted
	followUp.CompletedBy = &completedBy
	followUp.CompletedAt = &completedAt
	followUp.UpdatedAt = completedAt
	return true, nil
}

func (r *fakeFollowUpRepo) Cancel(id string) error {
	followUp, ok := r.followUps[id]
	if !ok || followUp.Status != entity.FollowUpStatusPending {
		return domain.ErrFollowUpNotPending
	}
	followUp.Status = entity.FollowUpStatusCancelled
	return nil
}

func (r *fakeFollowUpRepo) Delete(id string) error {
	if _, ok := r.followUps[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.followUps, id)
	return nil
}

func (r *fakeFollowUpRepo) DeleteByParent(parent entity.ParentRef) error {
	for id, f := range r.followUps {
		if f.Parent == parent {
			delete(r.followUps, id)
		}
	}
	return nil
}

// fakeTxRunner ejecuta los callbacks directamente sobre los fakes, sin
// transacción real.
type fakeTxRunner struct {
	leadRepo     *fakeLeadRepo
	customerRepo *fakeCustomerRepo
	contactRepo  *fakeContactRepo
	followUpRepo *fakeFollowUpRepo
}

var _ crm.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunConversion(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	contactRepo repository.ContactPersonRepository,
) error) error {
	return fn(r.customerRepo, r.contactRepo)
}

func (r *fakeTxRunner) RunContacts(ctx context.Context, fn func(
	contactRepo repository.ContactPersonRepository,
) error) error {
	return fn(r.contactRepo)
}

func (r *fakeTxRunner) RunCascade(ctx context.Context, fn func(
	leadRepo repository.LeadRepository,
	customerRepo repository.CustomerRepository,
	contactRepo repository.ContactPersonRepository,
	followUpRepo repository.FollowUpRepository,
) error) error {
	return fn(r.leadRepo, r.customerRepo, r.contactRepo, r.followUpRepo)
}
