package entity

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// User representa un usuario del sistema. En el ledger solo actúa como
// referencia del actor; la mecánica de sesión vive en pkg/jwt y el middleware.
type User struct {
	ID           int64
	Name         string
	Login        string // único
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         string // ADMIN, OPERATOR
	Active       bool
}
