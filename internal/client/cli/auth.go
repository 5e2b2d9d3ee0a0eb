package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adminsettings/internal/client/client"
	"github.com/dmitrijs2005/adminsettings/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func loginMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredential), errors.Is(err, common.ErrWrongPassword), errors.Is(err, common.ErrorNotFound):
		return "Invalid email or password"
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable"
	default:
		return "Login failed"
	}
}

// Login prompts for credentials, signs in and loads the profile into the
// screen. The configured email is offered as the default. The password is
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	prompt := "Enter email"
	if a.config.Email != "" {
		prompt = fmt.Sprintf("Enter email [%s]", a.config.Email)
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = a.config.Email
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.client.SignIn(ctx, email, string(password))
	if err != nil {
		a.logger.Debug(ctx, "sign in failed", "email", email, "error", err)
		fmt.Fprintln(a.out, loginMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", identity.Email)
	a.screen.SetIdentity(ctx, identity)
	return nil
}

// Logout forgets the session and clears the screen.
func (a *App) Logout(ctx context.Context) error {
	a.client.SignOut()
	a.screen.SetIdentity(ctx, nil)
	fmt.Fprintln(a.out, "Signed out")
	return nil
}
