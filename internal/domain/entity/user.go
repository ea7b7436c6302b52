package entity

// Role perfil de acceso de un usuario del caixa.
type Role string

// Roles válidos para User.
const (
	RoleAdmin  Role = "ADMIN"
	RoleVendor Role = "VENDOR"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleVendor
}

// User representa un usuario local del punto de venta.
// Password se guarda y compara en texto plano, igual que los registros existentes.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// UserUpdate campos que el perfil puede modificar. Password nil = no cambia.
type UserUpdate struct {
	ID       string
	Name     string
	Password *string
}

// DefaultUsers cuentas sembradas en el primer arranque del store.
func DefaultUsers() []User {
	return []User{
		{ID: "1", Name: "Administrador", Username: "admin", Password: "123", Role: RoleAdmin},
		{ID: "2", Name: "Vendedor Padrão", Username: "vendedor", Password: "123", Role: RoleVendor},
	}
}
