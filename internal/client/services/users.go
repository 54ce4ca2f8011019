package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uint, req models.UserUpdateRequest) (models.User, error)
}

type userService struct {
	api API
}

func NewUserService(api API) UserService {
	return &userService{api: api}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.api.Get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, id uint, req models.UserUpdateRequest) (models.User, error) {
	var u models.User
	if err := s.api.Put(ctx, fmt.Sprintf("/users/%d", id), req, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}
