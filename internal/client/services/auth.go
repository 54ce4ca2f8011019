package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/session"
	"github.com/dmitrijs2005/adminconsole/internal/common"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
)

// AuthService covers login and the session it produces.
//
// Contract:
//   - Login: authenticate with a captcha answer and store token, user and
//     menus in the session as one unit.
//   - Logout: tell the server when there is a session; the local session is
//     cleared whatever the outcome.
//   - IsAuthenticated, CurrentUser, UserMenus: read the session without a
//     network call.
type AuthService interface {
	Captcha(ctx context.Context, refreshID string) (models.Captcha, error)
	Login(ctx context.Context, username string, password []byte, captchaID, captcha string) (models.LoginResult, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (models.User, error)
	IsAuthenticated() bool
	CurrentUser() (models.User, bool)
	UserMenus() []models.Menu
}

type authService struct {
	api     API
	session *session.Session
	log     logging.Logger
}

func NewAuthService(api API, s *session.Session, log logging.Logger) AuthService {
	return &authService{api: api, session: s, log: log}
}

func (a *authService) Captcha(ctx context.Context, refreshID string) (models.Captcha, error) {
	var query url.Values
	if refreshID != "" {
		query = url.Values{"refresh": {refreshID}}
	}
	var c models.Captcha
	if err := a.api.Get(ctx, "/captcha", query, &c); err != nil {
		return models.Captcha{}, err
	}
	return c, nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte, captchaID, captcha string) (models.LoginResult, error) {
	if strings.TrimSpace(username) == "" || len(password) == 0 {
		return models.LoginResult{}, fmt.Errorf("%w: username and password are required", common.ErrorInvalidArgument)
	}

	req := models.LoginRequest{
		Username:  username,
		Password:  string(password),
		CaptchaID: captchaID,
		Captcha:   captcha,
	}
	var res models.LoginResult
	if err := a.api.Post(ctx, "/login", req, &res); err != nil {
		return models.LoginResult{}, err
	}
	if res.Token == "" {
		return models.LoginResult{}, errors.New("login response carried no token")
	}
	if res.Menus == nil {
		res.Menus = []models.Menu{}
	}

	if err := a.session.Login(ctx, res.Token, res.User, res.Menus); err != nil {
		return models.LoginResult{}, fmt.Errorf("failed to save session: %w", err)
	}
	return res, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return fmt.Errorf("%w: username and password are required", common.ErrorInvalidArgument)
	}
	return a.api.Post(ctx, "/register", req, nil)
}

func (a *authService) Logout(ctx context.Context) error {
	if a.session.IsAuthenticated() {
		if err := a.api.Post(ctx, "/logout", nil, nil); err != nil {
			a.log.Warn(ctx, "logout request failed", "error", err)
		}
	}
	return a.session.Clear(ctx)
}

func (a *authService) Profile(ctx context.Context) (models.User, error) {
	var u models.User
	if err := a.api.Get(ctx, "/auth/profile", nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (a *authService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}

func (a *authService) CurrentUser() (models.User, bool) {
	return a.session.Profile()
}

// UserMenus returns the cached menu set, never nil.
func (a *authService) UserMenus() []models.Menu {
	if m := a.session.Menus(); m != nil {
		return m
	}
	return []models.Menu{}
}
