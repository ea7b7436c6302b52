// Package access define qué puede ver y hacer cada rol en la interfaz del caixa.
//
// Es una convención de presentación: los casos de uso no repiten estas verificaciones.
// El middleware HTTP y las respuestas (campos ocultos) consultan siempre For(role).
package access

import "github.com/jhoicas/luviel-fluxo/internal/domain/entity"

// Page identificador de pantalla navegable.
type Page string

// Pantallas del sistema, en el orden del menú.
const (
	PageDashboard Page = "dashboard"
	PageSales     Page = "sales"
	PageInventory Page = "inventory"
	PageDamages   Page = "damages"
	PageReports   Page = "reports"
	PageSettings  Page = "settings"
)

// Capability acción o dato restringido por rol.
type Capability string

// Capacidades.
const (
	ManageProducts Capability = "manage_products" // criar, editar y apagar productos
	ViewCost       Capability = "view_cost"       // columna de custo en el inventario
	ViewProfit     Capability = "view_profit"     // lucro en el dashboard
	ViewReports    Capability = "view_reports"
	RecordSales    Capability = "record_sales"
	RecordDamages  Capability = "record_damages"
	ManageCashFlow Capability = "manage_cashflow"
	EditProfile    Capability = "edit_profile"
)

// Capabilities conjunto de pantallas y capacidades de un rol.
type Capabilities struct {
	Role  entity.Role
	Pages []Page
	set   map[Capability]bool
}

// Can indica si el rol tiene la capacidad.
func (c Capabilities) Can(capability Capability) bool {
	return c.set[capability]
}

// CanNavigate indica si la pantalla es alcanzable para el rol.
func (c Capabilities) CanNavigate(page Page) bool {
	for _, p := range c.Pages {
		if p == page {
			return true
		}
	}
	return false
}

// List devuelve las capacidades activas en orden estable.
func (c Capabilities) List() []Capability {
	out := make([]Capability, 0, len(c.set))
	for _, capability := range allCapabilities {
		if c.set[capability] {
			out = append(out, capability)
		}
	}
	return out
}

var allCapabilities = []Capability{
	ManageProducts, ViewCost, ViewProfit, ViewReports,
	RecordSales, RecordDamages, ManageCashFlow, EditProfile,
}

// For devuelve las capacidades del rol. Un rol desconocido no tiene ninguna.
func For(role entity.Role) Capabilities {
	switch role {
	case entity.RoleAdmin:
		return build(role,
			[]Page{PageDashboard, PageSales, PageInventory, PageDamages, PageReports, PageSettings},
			allCapabilities...,
		)
	case entity.RoleVendor:
		return build(role,
			[]Page{PageDashboard, PageSales, PageInventory, PageDamages, PageSettings},
			RecordSales, RecordDamages, EditProfile,
		)
	}
	return build(role, nil)
}

func build(role entity.Role, pages []Page, caps ...Capability) Capabilities {
	set := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	if pages == nil {
		pages = []Page{}
	}
	return Capabilities{Role: role, Pages: pages, set: set}
}
