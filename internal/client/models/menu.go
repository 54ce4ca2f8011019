package models

// Menu is a navigation node. Children form the permitted menu tree.
type Menu struct {
	ID        uint   `json:"id"`
	ParentID  uint   `json:"parent_id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	Component string `json:"component,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Sort      int    `json:"sort"`
	Type      int    `json:"type"`
	Hidden    bool   `json:"hidden"`
	Children  []Menu `json:"children,omitempty"`
}

// Walk visits every node depth-first, parents before children.
func Walk(menus []Menu, fn func(m Menu, depth int)) {
	var walk func(nodes []Menu, depth int)
	walk = func(nodes []Menu, depth int) {
		for _, m := range nodes {
			fn(m, depth)
			walk(m.Children, depth+1)
		}
	}
	walk(menus, 0)
}

// HasPath reports whether any node in the tree routes to path.
func HasPath(menus []Menu, path string) bool {
	found := false
	Walk(menus, func(m Menu, _ int) {
		if m.Path == path {
			found = true
		}
	})
	return found
}

type MenuCreateRequest struct {
	ParentID  uint   `json:"parent_id,omitempty"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	Component string `json:"component,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Sort      int    `json:"sort,omitempty"`
	Type      int    `json:"type,omitempty"`
	Hidden    bool   `json:"hidden,omitempty"`
}

// MenuUpdateRequest uses pointers so that zero values can be sent explicitly.
type MenuUpdateRequest struct {
	ParentID  *uint  `json:"parent_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Path      string `json:"path,omitempty"`
	Component string `json:"component,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Sort      *int   `json:"sort,omitempty"`
	Type      *int   `json:"type,omitempty"`
	Status    *int   `json:"status,omitempty"`
	Hidden    *bool  `json:"hidden,omitempty"`
}
