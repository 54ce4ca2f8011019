package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

// idArg parses args[0] as an id and returns the remaining arguments.
func idArg(args []string, usage string) (uint, []string, error) {
	if len(args) == 0 {
		return 0, nil, usageError{usage}
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, nil, err
	}
	return id, args[1:], nil
}

// fieldArgs parses name=value arguments, prompting for them when none were
// given on the command line.
func (a *App) fieldArgs(args []string) (*fields, error) {
	if len(args) == 0 {
		lines, err := GetFields(a.reader, a.out)
		if err != nil {
			return nil, err
		}
		args = lines
	}
	return parseFields(args)
}

func (a *App) usersCmd(ctx context.Context, _ []string) error {
	users, err := a.svc.Users.List(ctx)
	if err != nil {
		return err
	}
	return printJSON(users)
}

func (a *App) userUpdateCmd(ctx context.Context, args []string) error {
	id, rest, err := idArg(args, a.byName["user-update"].usage)
	if err != nil {
		return err
	}
	f, err := a.fieldArgs(rest)
	if err != nil {
		return err
	}
	req := models.UserUpdateRequest{
		RoleID:   f.asUint("role_id"),
		Email:    f.str("email"),
		Nickname: f.str("nickname"),
		Avatar:   f.str("avatar"),
	}
	if err := f.err(); err != nil {
		return err
	}

	u, err := a.svc.Users.Update(ctx, id, req)
	if err != nil {
		return err
	}
	return printJSON(u)
}

// rolesCmd lists roles, or shows one role with its menus when given an id.
func (a *App) rolesCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		roles, err := a.svc.Roles.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(roles)
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	r, err := a.svc.Roles.Get(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(r)
}

func (a *App) roleCreateCmd(ctx context.Context, args []string) error {
	f, err := a.fieldArgs(args)
	if err != nil {
		return err
	}
	f.require("name", "code")
	req := models.RoleCreateRequest{
		Name:        f.str("name"),
		Code:        f.str("code"),
		Description: f.str("description"),
		MenuIDs:     f.uints("menu_ids"),
	}
	if err := f.err(); err != nil {
		return err
	}

	r, err := a.svc.Roles.Create(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(r)
}

func (a *App) roleUpdateCmd(ctx context.Context, args []string) error {
	id, rest, err := idArg(args, a.byName["role-update"].usage)
	if err != nil {
		return err
	}
	f, err := a.fieldArgs(rest)
	if err != nil {
		return err
	}
	req := models.RoleUpdateRequest{
		Name:        f.str("name"),
		Description: f.str("description"),
		Status:      f.intPtr("status"),
		MenuIDs:     f.uints("menu_ids"),
	}
	if err := f.err(); err != nil {
		return err
	}

	r, err := a.svc.Roles.Update(ctx, id, req)
	if err != nil {
		return err
	}
	return printJSON(r)
}

func (a *App) roleDeleteCmd(ctx context.Context, args []string) error {
	id, _, err := idArg(args, a.byName["role-delete"].usage)
	if err != nil {
		return err
	}
	if err := a.svc.Roles.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Role", id, "deleted")
	return nil
}

// roleMenusCmd replaces the role's menus with the listed ids; no ids clears them.
func (a *App) roleMenusCmd(ctx context.Context, args []string) error {
	id, rest, err := idArg(args, a.byName["role-menus"].usage)
	if err != nil {
		return err
	}
	menuIDs, err := parseIDs(rest)
	if err != nil {
		return err
	}
	if err := a.svc.Roles.AssignMenus(ctx, id, menuIDs); err != nil {
		return err
	}
	printlnFn("Role", id, "now has", len(menuIDs), "menus")
	return nil
}

func (a *App) menuTreeCmd(ctx context.Context, _ []string) error {
	tree, err := a.svc.Menus.Tree(ctx)
	if err != nil {
		return err
	}
	return printJSON(tree)
}

func (a *App) menuCreateCmd(ctx context.Context, args []string) error {
	f, err := a.fieldArgs(args)
	if err != nil {
		return err
	}
	f.require("name", "path")
	req := models.MenuCreateRequest{
		ParentID:  f.asUint("parent_id"),
		Name:      f.str("name"),
		Path:      f.str("path"),
		Component: f.str("component"),
		Icon:      f.str("icon"),
		Sort:      f.asInt("sort"),
		Type:      f.asInt("type"),
		Hidden:    f.asBool("hidden"),
	}
	if err := f.err(); err != nil {
		return err
	}

	m, err := a.svc.Menus.Create(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(m)
}

func (a *App) menuUpdateCmd(ctx context.Context, args []string) error {
	id, rest, err := idArg(args, a.byName["menu-update"].usage)
	if err != nil {
		return err
	}
	f, err := a.fieldArgs(rest)
	if err != nil {
		return err
	}
	req := models.MenuUpdateRequest{
		ParentID:  f.uintPtr("parent_id"),
		Name:      f.str("name"),
		Path:      f.str("path"),
		Component: f.str("component"),
		Icon:      f.str("icon"),
		Sort:      f.intPtr("sort"),
		Type:      f.intPtr("type"),
		Status:    f.intPtr("status"),
		Hidden:    f.boolPtr("hidden"),
	}
	if err := f.err(); err != nil {
		return err
	}

	m, err := a.svc.Menus.Update(ctx, id, req)
	if err != nil {
		return err
	}
	return printJSON(m)
}

func (a *App) menuDeleteCmd(ctx context.Context, args []string) error {
	id, _, err := idArg(args, a.byName["menu-delete"].usage)
	if err != nil {
		return err
	}
	if err := a.svc.Menus.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Menu", id, "deleted")
	return nil
}

// ordersCmd pages through orders: leading numbers are page and page size,
// name=value arguments filter by product_id and status.
func (a *App) ordersCmd(ctx context.Context, args []string) error {
	var nums []int
	var filters []string
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil && len(filters) == 0 && len(nums) < 2 {
			nums = append(nums, n)
			continue
		}
		filters = append(filters, arg)
	}
	page, size := 1, 10
	if len(nums) > 0 {
		page = nums[0]
	}
	if len(nums) > 1 {
		size = nums[1]
	}

	f, err := parseFields(filters)
	if err != nil {
		return err
	}
	productID, status := f.str("product_id"), f.str("status")
	if err := f.err(); err != nil {
		return err
	}

	p, err := a.svc.Orders.Page(ctx, page, size, productID, status)
	if err != nil {
		return err
	}
	if err := printJSON(p.Data); err != nil {
		return err
	}
	printlnFn("page", p.Page, "of", p.TotalPages, "-", p.Total, "orders")
	return nil
}

func (a *App) ordersAllCmd(ctx context.Context, _ []string) error {
	orders, err := a.svc.Orders.All(ctx)
	if err != nil {
		return err
	}
	return printJSON(orders)
}

func (a *App) orderCmd(ctx context.Context, args []string) error {
	id, _, err := idArg(args, a.byName["order"].usage)
	if err != nil {
		return err
	}
	o, err := a.svc.Orders.Get(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(o)
}

func (a *App) orderCreateCmd(ctx context.Context, args []string) error {
	f, err := a.fieldArgs(args)
	if err != nil {
		return err
	}
	f.require("product_id", "quantity", "total", "status")
	req := models.OrderCreateRequest{
		ProductID: f.asUint("product_id"),
		Quantity:  f.asUint("quantity"),
		Total:     f.asFloat("total"),
		Status:    f.str("status"),
		PaymentID: f.asUint("payment_id"),
	}
	if err := f.err(); err != nil {
		return err
	}

	o, err := a.svc.Orders.Create(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(o)
}

func (a *App) orderUpdateCmd(ctx context.Context, args []string) error {
	id, rest, err := idArg(args, a.byName["order-update"].usage)
	if err != nil {
		return err
	}
	f, err := a.fieldArgs(rest)
	if err != nil {
		return err
	}
	req := models.OrderUpdateRequest{
		Quantity:  f.asUint("quantity"),
		Total:     f.asFloat("total"),
		Status:    f.str("status"),
		PaymentID: f.asUint("payment_id"),
	}
	if err := f.err(); err != nil {
		return err
	}

	o, err := a.svc.Orders.Update(ctx, id, req)
	if err != nil {
		return err
	}
	return printJSON(o)
}

func (a *App) orderDeleteCmd(ctx context.Context, args []string) error {
	id, _, err := idArg(args, a.byName["order-delete"].usage)
	if err != nil {
		return err
	}
	if err := a.svc.Orders.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Order", id, "deleted")
	return nil
}
