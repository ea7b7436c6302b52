package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
)

func TestFor_AdminTieneTodo(t *testing.T) {
	caps := access.For(entity.RoleAdmin)

	for _, c := range []access.Capability{
		access.ManageProducts, access.ViewCost, access.ViewProfit, access.ViewReports,
		access.RecordSales, access.RecordDamages, access.ManageCashFlow, access.EditProfile,
	} {
		assert.True(t, caps.Can(c), "admin debe tener %s", c)
	}
	assert.True(t, caps.CanNavigate(access.PageReports))
	assert.Len(t, caps.Pages, 6)
}

func TestFor_VendedorSinReportesNiGestion(t *testing.T) {
	caps := access.For(entity.RoleVendor)

	assert.False(t, caps.CanNavigate(access.PageReports), "vendedor no ve relatórios")
	assert.True(t, caps.CanNavigate(access.PageSales))
	assert.True(t, caps.CanNavigate(access.PageSettings))

	assert.False(t, caps.Can(access.ManageProducts))
	assert.False(t, caps.Can(access.ViewCost))
	assert.False(t, caps.Can(access.ViewProfit))
	assert.True(t, caps.Can(access.RecordSales))
	assert.True(t, caps.Can(access.RecordDamages))
	assert.Equal(t,
		[]access.Capability{access.RecordSales, access.RecordDamages, access.EditProfile},
		caps.List())
}

func TestFor_RolDesconocido(t *testing.T) {
	caps := access.For(entity.Role("GUEST"))

	assert.Empty(t, caps.Pages)
	assert.Empty(t, caps.List())
	assert.False(t, caps.CanNavigate(access.PageDashboard))
}
