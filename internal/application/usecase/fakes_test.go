package usecase_test

import (
	"context"
	"time"

	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso CRUD
// ──────────────────────────────────────────────────────────────────────────────

type memLeadRepo struct {
	leads map[string]*entity.Lead
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{leads: make(map[string]*entity.Lead)}
}

func (r *memLeadRepo) Create(lead *entity.Lead) error { r.leads[lead.ID] = lead; return nil }

func (r *memLeadRepo) GetByID(id string) (*entity.Lead, error) {
	lead, ok := r.leads[id]
	if !ok || lead.DeletedAt != nil {
		return nil, nil
	}
	return lead, nil
}

func (r *memLeadRepo) List(limit, offset int) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.leads {
		if l.DeletedAt == nil {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLeadRepo) Search(query string, limit, offset int) ([]*entity.Lead, error) {
	return r.List(limit, offset)
}

func (r *memLeadRepo) Update(lead *entity.Lead) error {
	if _, ok := r.leads[lead.ID]; !ok {
		return domain.ErrNotFound
	}
	r.leads[lead.ID] = lead
	return nil
}

func (r *memLeadRepo) Delete(id string) error {
	lead, ok := r.leads[id]
	if !ok || lead.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	lead.DeletedAt = &now
	return nil
}

func (r *memLeadRepo) ClearService(serviceID string) error {
	for _, l := range r.leads {
		if l.ServiceID != nil && *l.ServiceID == serviceID {
			l.ServiceID = nil
		}
	}
	return nil
}

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	return c, nil
}

func (r *memCustomerRepo) GetByConvertedFromLead(leadID string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.DeletedAt == nil && c.ConvertedFromLeadID != nil && *c.ConvertedFromLeadID == leadID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCustomerRepo) Search(query string, limit, offset int) ([]*entity.Customer, error) {
	return r.List(limit, offset)
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	c, ok := r.customers[id]
	if !ok || c.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	c.DeletedAt = &now
	return nil
}

type memContactRepo struct {
	contacts map[string]*entity.ContactPerson
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{contacts: make(map[string]*entity.ContactPerson)}
}

func (r *memContactRepo) Create(c *entity.ContactPerson) error { r.contacts[c.ID] = c; return nil }

func (r *memContactRepo) GetByID(id string) (*entity.ContactPerson, error) {
	return r.contacts[id], nil
}

func (r *memContactRepo) ListByParent(parent entity.ParentRef) ([]*entity.ContactPerson, error) {
	var out []*entity.ContactPerson
	for _, c := range r.contacts {
		if c.Parent == parent {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memContactRepo) Update(c *entity.ContactPerson) error { r.contacts[c.ID] = c; return nil }

func (r *memContactRepo) Delete(id string) error { delete(r.contacts, id); return nil }

func (r *memContactRepo) DeleteByParent(parent entity.ParentRef) error {
	for id, c := range r.contacts {
		if c.Parent == parent {
			delete(r.contacts, id)
		}
	}
	return nil
}

func (r *memContactRepo) ClearPrimary(parent entity.ParentRef) error {
	for _, c := range r.contacts {
		if c.Parent == parent {
			c.IsPrimary = false
		}
	}
	return nil
}

func (r *memContactRepo) LockParent(parent entity.ParentRef) error { return nil }

type memFollowUpRepo struct {
	followUps map[string]*entity.FollowUp
}

func newMemFollowUpRepo() *memFollowUpRepo {
	return &memFollowUpRepo{followUps: make(map[string]*entity.FollowUp)}
}

func (r *memFollowUpRepo) Create(f *entity.FollowUp) error { r.followUps[f.ID] = f; return nil }

func (r *memFollowUpRepo) GetByID(id string) (*entity.FollowUp, error) {
	return r.followUps[id], nil
}

func (r *memFollowUpRepo) ListByParent(parent entity.ParentRef) ([]*entity.FollowUp, error) {
	var out []*entity.FollowUp
	for _, f := range r.followUps {
		if f.Parent == parent {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memFollowUpRepo) ListOverdue(today time.Time, limit, offset int) ([]*entity.FollowUp, error) {
	var out []*entity.FollowUp
	for _, f := range r.followUps {
		if f.IsOverdue(today) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memFollowUpRepo) Update(f *entity.FollowUp) error { r.followUps[f.ID] = f; return nil }

func (r *memFollowUpRepo) Complete(id, completedBy string, completedAt time.Time) (bool, error) {
	f, ok := r.followUps[id]
	if !ok || f.Status != entity.FollowUpStatusPending {
		return false, nil
	}
	f.Status = entity.FollowUpStatusCompleted
	f.CompletedBy = &completedBy
	f.CompletedAt = &completedAt
	return true, nil
}

func (r *memFollowUpRepo) Cancel(id string) error {
	f, ok := r.followUps[id]
	if !ok || f.Status != entity.FollowUpStatusPending {
		return domain.ErrFollowUpNotPending
	}
	f.Status = entity.FollowUpStatusCancelled
	return nil
}

func (r *memFollowUpRepo) Delete(id string) error { delete(r.followUps, id); return nil }

func (r *memFollowUpRepo) DeleteByParent(parent entity.ParentRef) error {
	for id, f := range r.followUps {
		if f.Parent == parent {
			delete(r.followUps, id)
		}
	}
	return nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *memUserRepo) Delete(id string) error { delete(r.users, id); return nil }

type memRoleRepo struct {
	roles map[string]*entity.Role
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{roles: make(map[string]*entity.Role)}
}

func (r *memRoleRepo) Create(role *entity.Role) error { r.roles[role.ID] = role; return nil }

func (r *memRoleRepo) GetByID(id string) (*entity.Role, error) { return r.roles[id], nil }

func (r *memRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *memRoleRepo) GetByNames(names []string) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, n := range names {
		if role, err := r.GetByName(n); err == nil && role != nil {
			out = append(out, role)
		}
	}
	return out, nil
}

func (r *memRoleRepo) List(limit, offset int) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

func (r *memRoleRepo) Update(role *entity.Role) error { r.roles[role.ID] = role; return nil }

func (r *memRoleRepo) Delete(id string) error { delete(r.roles, id); return nil }

func (r *memRoleRepo) Upsert(role *entity.Role) error {
	if existing, _ := r.GetByName(role.Name); existing != nil {
		role.ID = existing.ID
	}
	r.roles[role.ID] = role
	return nil
}

// memTxRunner ejecuta los callbacks directamente sobre los fakes.
type memTxRunner struct {
	leadRepo     *memLeadRepo
	customerRepo *memCustomerRepo
	contactRepo  *memContactRepo
	followUpRepo *memFollowUpRepo
}

var _ crm.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) RunConversion(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	contactRepo repository.ContactPersonRepository,
) error) error {
	return fn(r.customerRepo, r.contactRepo)
}

func (r *memTxRunner) RunContacts(ctx context.Context, fn func(
	contactRepo repository.ContactPersonRepository,
) error) error {
	return fn(r.contactRepo)
}

func (r *memTxRunner) RunCascade(ctx context.Context, fn func(
	leadRepo repository.LeadRepository,
	customerRepo repository.CustomerRepository,
	contactRepo repository.ContactPersonRepository,
	followUpRepo repository.FollowUpRepository,
) error) error {
	return fn(r.leadRepo, r.customerRepo, r.contactRepo, r.followUpRepo)
}
