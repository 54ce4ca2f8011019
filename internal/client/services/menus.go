package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

type MenuService interface {
	UserMenus(ctx context.Context) ([]models.Menu, error)
	Tree(ctx context.Context) ([]models.Menu, error)
	Create(ctx context.Context, req models.MenuCreateRequest) (models.Menu, error)
	Update(ctx context.Context, id uint, req models.MenuUpdateRequest) (models.Menu, error)
	Delete(ctx context.Context, id uint) error
}

type menuService struct {
	api API
}

func NewMenuService(api API) MenuService {
	return &menuService{api: api}
}

// UserMenus asks the server for the caller's menus; AuthService.UserMenus
// returns the copy cached at login.
func (s *menuService) UserMenus(ctx context.Context) ([]models.Menu, error) {
	return s.list(ctx, "/menus/user")
}

func (s *menuService) Tree(ctx context.Context) ([]models.Menu, error) {
	return s.list(ctx, "/menus/tree")
}

func (s *menuService) list(ctx context.Context, path string) ([]models.Menu, error) {
	menus := []models.Menu{}
	if err := s.api.Get(ctx, path, nil, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *menuService) Create(ctx context.Context, req models.MenuCreateRequest) (models.Menu, error) {
	var m models.Menu
	if err := s.api.Post(ctx, "/menus", req, &m); err != nil {
		return models.Menu{}, err
	}
	return m, nil
}

func (s *menuService) Update(ctx context.Context, id uint, req models.MenuUpdateRequest) (models.Menu, error) {
	var m models.Menu
	if err := s.api.Put(ctx, fmt.Sprintf("/menus/%d", id), req, &m); err != nil {
		return models.Menu{}, err
	}
	return m, nil
}

func (s *menuService) Delete(ctx context.Context, id uint) error {
	return s.api.Delete(ctx, fmt.Sprintf("/menus/%d", id), nil)
}
