package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// captchaDir is where captcha images are written for the user to open.
var captchaDir = os.TempDir

// captchaCmd fetches a new captcha, replacing the previous one if any.
func (a *App) captchaCmd(ctx context.Context, _ []string) error {
	_, err := a.showCaptcha(ctx)
	return err
}

func (a *App) showCaptcha(ctx context.Context) (models.Captcha, error) {
	c, err := a.svc.Auth.Captcha(ctx, a.captchaID)
	if err != nil {
		return models.Captcha{}, err
	}
	a.captchaID = c.CaptchaID

	if path, err := saveCaptchaImage(c); err != nil {
		a.log.Warn(ctx, "failed to save captcha image", "error", err)
		printlnFn("Captcha:", c.CaptchaImage)
	} else {
		printlnFn("Captcha image saved to", path)
	}
	return c, nil
}

// saveCaptchaImage writes the base64 data URL of c to a PNG file.
func saveCaptchaImage(c models.Captcha) (string, error) {
	_, payload, ok := strings.Cut(c.CaptchaImage, ";base64,")
	if !ok {
		return "", errors.New("captcha is not a base64 data URL")
	}
	img, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode captcha image: %w", err)
	}
	path := filepath.Join(captchaDir(), "admin-captcha-"+sanitize(c.CaptchaID)+".png")
	if err := os.WriteFile(path, img, 0o600); err != nil {
		return "", fmt.Errorf("failed to write captcha image: %w", err)
	}
	return path, nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			return r
		}
		return -1
	}, s)
}

// loginCmd prompts for credentials and a captcha answer. The captcha is
// refreshed after a failed attempt.
func (a *App) loginCmd(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.showCaptcha(ctx); err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "Enter captcha", a.out)
	if err != nil {
		return err
	}

	res, err := a.svc.Auth.Login(ctx, userName, password, a.captchaID, answer)
	if err != nil {
		if _, cerr := a.showCaptcha(ctx); cerr != nil {
			a.log.Warn(ctx, "failed to refresh captcha", "error", cerr)
		}
		return err
	}

	a.captchaID = ""
	printlnFn("Welcome,", res.User.DisplayName())
	return nil
}

func (a *App) registerCmd(ctx context.Context, _ []string) error {
	var req models.RegisterRequest
	var err error

	if req.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.Nickname, err = getSimpleText(a.reader, "Enter nickname (optional)", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if _, err := a.showCaptcha(ctx); err != nil {
		return err
	}
	if req.Captcha, err = getSimpleText(a.reader, "Enter captcha", a.out); err != nil {
		return err
	}
	req.CaptchaID = a.captchaID

	if err := a.svc.Auth.Register(ctx, req); err != nil {
		return err
	}
	a.captchaID = ""
	printlnFn("Registered. You can log in now.")
	return nil
}

func (a *App) logoutCmd(ctx context.Context, _ []string) error {
	if err := a.svc.Auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

func (a *App) whoamiCmd(ctx context.Context, _ []string) error {
	u, err := a.svc.Auth.Profile(ctx)
	if err != nil {
		return err
	}
	return printJSON(u)
}

// menusCmd prints the menu tree granted at login as an indented outline.
// With a path argument it reports whether that path is granted.
func (a *App) menusCmd(_ context.Context, args []string) error {
	menus := a.svc.Auth.UserMenus()
	if len(args) > 0 {
		if models.HasPath(menus, args[0]) {
			printlnFn(args[0], "is granted")
		} else {
			printlnFn(args[0], "is not granted")
		}
		return nil
	}
	if len(menus) == 0 {
		printlnFn("No menus")
		return nil
	}
	models.Walk(menus, func(m models.Menu, depth int) {
		printlnFn(fmt.Sprintf("%s%s  %s", strings.Repeat("  ", depth), m.Name, m.Path))
	})
	return nil
}
