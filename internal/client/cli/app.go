package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/adminconsole/internal/client/config"
	"github.com/dmitrijs2005/adminconsole/internal/client/gateway"
	"github.com/dmitrijs2005/adminconsole/internal/client/repositories/transcripts"
	"github.com/dmitrijs2005/adminconsole/internal/client/services"
	"github.com/dmitrijs2005/adminconsole/internal/client/session"
	"github.com/dmitrijs2005/adminconsole/internal/client/storage"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
)

// Services groups the application services the console drives.
type Services struct {
	Auth   services.AuthService
	Users  services.UserService
	Menus  services.MenuService
	Roles  services.RoleService
	Orders services.OrderService
	Chat   services.ChatService
}

type App struct {
	svc    Services
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB

	closeOnce sync.Once
	closeErr  error

	captchaID string

	commands []command
	byName   map[string]command
}

// NewApp opens the local database, restores the session and wires the
// gateway and services from cfg. The caller must Close the App.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	sess := session.New(db)
	if err := sess.Load(ctx); err != nil {
		if !errors.Is(err, session.ErrExpired) {
			db.Close()
			return nil, err
		}
		log.Info(ctx, "stored session has expired")
	}

	gw, err := gateway.New(gateway.Config{BaseAddress: cfg.APIBaseURL, Timeout: cfg.RequestTimeout}, sess, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	svc := Services{
		Auth:   services.NewAuthService(gw, sess, log),
		Users:  services.NewUserService(gw),
		Menus:  services.NewMenuService(gw),
		Roles:  services.NewRoleService(gw),
		Orders: services.NewOrderService(gw),
		Chat:   services.NewChatService(gw, sess, transcripts.NewSQLiteRepository(db), log),
	}

	a := newApp(svc, log, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(svc Services, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{svc: svc, log: log, reader: bufio.NewReader(in), out: out}
	a.commands = a.registerCommands()
	a.byName = make(map[string]command, len(a.commands))
	for _, c := range a.commands {
		a.byName[c.name] = c
	}
	return a
}

// Run blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the admin console (type 'help' for commands)")
	if a.isLoggedIn() {
		if u, ok := a.svc.Auth.CurrentUser(); ok {
			printlnFn("Logged in as", u.DisplayName())
		}
	}
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the local database. It is safe to call more than once.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		if a.db != nil {
			a.closeErr = a.db.Close()
		}
	})
	return a.closeErr
}

func (a *App) isLoggedIn() bool {
	return a.svc.Auth.IsAuthenticated()
}

func (a *App) status() string {
	if u, ok := a.svc.Auth.CurrentUser(); ok && a.isLoggedIn() {
		return "(" + u.Username + ") "
	}
	return ""
}

func (a *App) lookup(name string) (command, bool) {
	c, ok := a.byName[name]
	return c, ok
}

func (a *App) commandNames(loggedIn bool) []string {
	names := make([]string, 0, len(a.commands))
	for _, c := range a.commands {
		if c.protected && !loggedIn {
			continue
		}
		names = append(names, c.name)
	}
	return names
}

// report prints err as the user-facing message. An authorization failure
// has already cleared the session; the user is told to log in again.
func (a *App) report(ctx context.Context, err error) {
	printlnFn("Error:", err.Error())
	if errors.Is(err, gateway.ErrUnauthorized) {
		printlnFn("You have been logged out. Type 'login' to continue.")
	}
	a.log.Debug(ctx, "command failed", "error", err)
}

// usageError is returned for malformed command arguments.
type usageError struct {
	usage string
}

func (e usageError) Error() string {
	return fmt.Sprintf("usage: %s", e.usage)
}
