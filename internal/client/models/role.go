package models

import "time"

type Role struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	IsSuper     bool      `json:"is_super"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Menus       []Menu    `json:"menus,omitempty"`
}

type RoleCreateRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	MenuIDs     []uint `json:"menu_ids,omitempty"`
}

type RoleUpdateRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Status      *int   `json:"status,omitempty"`
	MenuIDs     []uint `json:"menu_ids,omitempty"`
}

type AssignMenusRequest struct {
	MenuIDs []uint `json:"menu_ids"`
}
