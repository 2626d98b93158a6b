package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "Admin"
	RoleManager    = "Manager"
	RoleTelecaller = "Telecaller"
)

// User representa un operador del CRM.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Admin, Manager, Telecaller
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
