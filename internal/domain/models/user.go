package models

import "time"

// User is a portal account. Role decides which portal the client routes
// to; the client must never infer it from the form that was used.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
