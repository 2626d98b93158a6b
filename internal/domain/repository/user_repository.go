package repository

import "github.com/jhoicas/Leadflow-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Create debe retornar domain.ErrEmailAlreadyExists si el email ya existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
