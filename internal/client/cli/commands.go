package cli

// registerCommands lists the REPL verbs in the order help shows them.
func (a *App) registerCommands() []command {
	return []command{
		{name: "captcha", usage: "captcha", run: a.captchaCmd},
		{name: "login", usage: "login", run: a.loginCmd},
		{name: "register", usage: "register", run: a.registerCmd},

		{name: "logout", usage: "logout", protected: true, run: a.logoutCmd},
		{name: "whoami", usage: "whoami", protected: true, run: a.whoamiCmd},
		{name: "menus", usage: "menus [path]", protected: true, run: a.menusCmd},

		{name: "users", usage: "users", protected: true, run: a.usersCmd},
		{name: "user-update", usage: "user-update <id> [role_id=N] [email=E] [nickname=N] [avatar=URL]", protected: true, run: a.userUpdateCmd},

		{name: "roles", usage: "roles [id]", protected: true, run: a.rolesCmd},
		{name: "role-create", usage: "role-create name=N code=C [description=D] [menu_ids=1,2]", protected: true, run: a.roleCreateCmd},
		{name: "role-update", usage: "role-update <id> [name=N] [description=D] [status=N] [menu_ids=1,2]", protected: true, run: a.roleUpdateCmd},
		{name: "role-delete", usage: "role-delete <id>", protected: true, run: a.roleDeleteCmd},
		{name: "role-menus", usage: "role-menus <id> [menu_id ...]", protected: true, run: a.roleMenusCmd},

		{name: "menu-tree", usage: "menu-tree", protected: true, run: a.menuTreeCmd},
		{name: "menu-create", usage: "menu-create name=N path=P [parent_id=N] [component=C] [icon=I] [sort=N] [type=N] [hidden=true]", protected: true, run: a.menuCreateCmd},
		{name: "menu-update", usage: "menu-update <id> [name=N] [path=P] [parent_id=N] [component=C] [icon=I] [sort=N] [type=N] [status=N] [hidden=B]", protected: true, run: a.menuUpdateCmd},
		{name: "menu-delete", usage: "menu-delete <id>", protected: true, run: a.menuDeleteCmd},

		{name: "orders", usage: "orders [page] [page_size] [product_id=P] [status=S]", protected: true, run: a.ordersCmd},
		{name: "orders-all", usage: "orders-all", protected: true, run: a.ordersAllCmd},
		{name: "order", usage: "order <id>", protected: true, run: a.orderCmd},
		{name: "order-create", usage: "order-create product_id=N quantity=N total=F status=S [payment_id=N]", protected: true, run: a.orderCreateCmd},
		{name: "order-update", usage: "order-update <id> [quantity=N] [total=F] [status=S] [payment_id=N]", protected: true, run: a.orderUpdateCmd},
		{name: "order-delete", usage: "order-delete <id>", protected: true, run: a.orderDeleteCmd},

		{name: "chat", usage: "chat [message]", protected: true, run: a.chatCmd},
		{name: "history", usage: "history", protected: true, run: a.historyCmd},
		{name: "chat-reset", usage: "chat-reset", protected: true, run: a.chatResetCmd},
	}
}
