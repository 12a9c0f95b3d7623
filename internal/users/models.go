package users

// Role is an account's access level.
type Role string

const (
	RoleUser    Role = "usuario"
	RoleAdmin   Role = "admin"
	RoleManager Role = "gerente"
)

var knownRoles = map[Role]bool{
	RoleUser:    true,
	RoleAdmin:   true,
	RoleManager: true,
}

func (r Role) Valid() bool {
	return knownRoles[r]
}

// Account is a registered user. The password is stored and compared as an
// opaque string; the JSON field names are the directory's persisted wire
// shape and must not change.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     Role   `json:"cargo"`
}

// AccountInput is an Account minus the generated identifier.
type AccountInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// Snapshot is the persisted wrapper around the account list.
type Snapshot struct {
	Usuarios []Account `json:"usuarios"`
}

// Seed holds the single account present at initialization.
func Seed() []Account {
	return []Account{
		{
			ID:       "1",
			Name:     "Administrador",
			Email:    "admin@exemplo.com",
			Password: "admin123",
			Role:     RoleAdmin,
		},
	}
}
