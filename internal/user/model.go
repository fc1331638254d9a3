package user

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleCustomer   Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSupervisor || r == RoleCustomer
}

type Provider string

const (
	ProviderEmail  Provider = "email"
	ProviderGoogle Provider = "google"
)

// User is the identity snapshot attached to sessions and sales.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     Role     `json:"role"`
	Phone    string   `json:"phone,omitempty"`
	Picture  string   `json:"picture,omitempty"`
	Provider Provider `json:"provider,omitempty"`
}

// Registration is the persisted record under the "registeredUsers" document.
// Password holds the bcrypt hash, never the plain text.
type Registration struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Role     Role     `json:"role"`
	Picture  string   `json:"picture,omitempty"`
	Provider Provider `json:"provider,omitempty"`
}

func (r Registration) User() User {
	return User{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		Phone:    r.Phone,
		Picture:  r.Picture,
		Provider: r.Provider,
	}
}
