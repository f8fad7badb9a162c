package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
)

// UserRepository implementación en memoria de repository.UserRepository.
type UserRepository struct {
	g guard
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	defer r.g.write()()
	key := strings.ToLower(user.Email)
	if _, ok := r.g.store.users[key]; ok {
		return fmt.Errorf("%w: email %s ya registrado", domain.ErrConflict, user.Email)
	}
	u := *user
	r.g.store.users[key] = &u
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.g.read()()
	u, ok := r.g.store.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}
