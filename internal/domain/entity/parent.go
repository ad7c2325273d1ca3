package entity

// ParentKind discrimina el tipo de padre en asociaciones polimórficas
// (personas de contacto y seguimientos cuelgan de un Lead o de un Customer).
type ParentKind string

// Valores válidos de ParentKind.
const (
	ParentLead     ParentKind = "lead"
	ParentCustomer ParentKind = "customer"
)

// Valid informa si el kind es uno de los soportados.
func (k ParentKind) Valid() bool {
	return k == ParentLead || k == ParentCustomer
}

// ParentRef referencia polimórfica (tipo + id). Se persiste como dos columnas
// (parent_kind, parent_id) en lugar de una FK a una tabla concreta.
type ParentRef struct {
	Kind ParentKind
	ID   string
}

// LeadRef referencia a un lead.
func LeadRef(id string) ParentRef { return ParentRef{Kind: ParentLead, ID: id} }

// CustomerRef referencia a un customer.
func CustomerRef(id string) ParentRef { return ParentRef{Kind: ParentCustomer, ID: id} }
