package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

type RoleService interface {
	List(ctx context.Context) ([]models.Role, error)
	Get(ctx context.Context, id uint) (models.Role, error)
	Create(ctx context.Context, req models.RoleCreateRequest) (models.Role, error)
	Update(ctx context.Context, id uint, req models.RoleUpdateRequest) (models.Role, error)
	Delete(ctx context.Context, id uint) error
	AssignMenus(ctx context.Context, id uint, menuIDs []uint) error
}

type roleService struct {
	api API
}

func NewRoleService(api API) RoleService {
	return &roleService{api: api}
}

func (s *roleService) List(ctx context.Context) ([]models.Role, error) {
	roles := []models.Role{}
	if err := s.api.Get(ctx, "/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *roleService) Get(ctx context.Context, id uint) (models.Role, error) {
	var r models.Role
	if err := s.api.Get(ctx, rolePath(id), nil, &r); err != nil {
		return models.Role{}, err
	}
	return r, nil
}

func (s *roleService) Create(ctx context.Context, req models.RoleCreateRequest) (models.Role, error) {
	var r models.Role
	if err := s.api.Post(ctx, "/roles", req, &r); err != nil {
		return models.Role{}, err
	}
	return r, nil
}

func (s *roleService) Update(ctx context.Context, id uint, req models.RoleUpdateRequest) (models.Role, error) {
	var r models.Role
	if err := s.api.Put(ctx, rolePath(id), req, &r); err != nil {
		return models.Role{}, err
	}
	return r, nil
}

func (s *roleService) Delete(ctx context.Context, id uint) error {
	return s.api.Delete(ctx, rolePath(id), nil)
}

// AssignMenus replaces the role's menu set. An empty list removes every menu.
func (s *roleService) AssignMenus(ctx context.Context, id uint, menuIDs []uint) error {
	if menuIDs == nil {
		menuIDs = []uint{}
	}
	return s.api.Post(ctx, rolePath(id)+"/menus", models.AssignMenusRequest{MenuIDs: menuIDs}, nil)
}

func rolePath(id uint) string {
	return fmt.Sprintf("/roles/%d", id)
}
