package domain

// Session carries the authenticated identity into service calls.
// It replaces ambient token storage: handlers build it from the bearer
// token and pass it down explicitly.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Pagination carries paging params for list endpoints.
type Pagination struct {
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

// Clamp keeps limit/skip inside the bounds the API accepts.
func (p Pagination) Clamp() Pagination {
	if p.Limit < 1 {
		p.Limit = 100
	}
	if p.Limit > 1000 {
		p.Limit = 1000
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
	return p
}

// User roles accepted at registration.
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
)

func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleDriver
}
