package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/adminsettings/internal/client/settings"
	"github.com/dmitrijs2005/adminsettings/internal/common"
)

// fieldAliases maps the names accepted by "set" to form fields.
var fieldAliases = map[string]string{
	"first":     settings.FieldFirstName,
	"firstname": settings.FieldFirstName,
	"last":      settings.FieldLastName,
	"lastname":  settings.FieldLastName,
	"email":     settings.FieldEmail,
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Show prints the profile form.
func (a *App) Show(ctx context.Context) error {
	st := a.screen.State()
	fmt.Fprintf(a.out, "First name:          %s\n", st.Form.FirstName)
	fmt.Fprintf(a.out, "Last name:           %s\n", st.Form.LastName)
	fmt.Fprintf(a.out, "Email (read-only):   %s\n", st.Form.Email)
	fmt.Fprintf(a.out, "Email notifications: %s\n", onOff(st.EmailNotifications))
	return nil
}

// Set edits a profile field: set <field> <value...>.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: set <first|last> <value>")
		return nil
	}

	name, ok := fieldAliases[strings.ToLower(args[0])]
	if !ok {
		name = args[0]
	}
	value := strings.Join(args[1:], " ")

	if err := a.screen.SetField(name, value); err != nil {
		switch {
		case errors.Is(err, settings.ErrFieldReadOnly):
			fmt.Fprintln(a.out, "Email cannot be changed here")
		default:
			fmt.Fprintf(a.out, "Unknown field %q\n", args[0])
		}
		return err
	}
	return nil
}

// Save submits the profile form.
func (a *App) Save(ctx context.Context) error {
	a.screen.SubmitProfile(ctx)
	return nil
}

// Password prompts for the current password and the new one twice, then
// submits the password form. Entered bytes are wiped afterwards.
func (a *App) Password(ctx context.Context) error {
	prompts := []struct {
		field  string
		prompt string
	}{
		{settings.FieldCurrentPassword, "Current password"},
		{settings.FieldNewPassword, "New password"},
		{settings.FieldConfirmPassword, "Confirm new password"},
	}

	for _, p := range prompts {
		pw, err := getPassword(a.out, p.prompt)
		if err != nil {
			return err
		}
		err = a.screen.SetField(p.field, string(pw))
		common.WipeByteArray(pw)
		if err != nil {
			return err
		}
	}

	a.screen.SubmitPassword(ctx)
	return nil
}

// Notifications flips the email notification checkbox.
func (a *App) Notifications(ctx context.Context) error {
	v := a.screen.ToggleEmailNotifications()
	fmt.Fprintf(a.out, "Email notifications: %s (not saved)\n", onOff(v))
	return nil
}

// Reload fetches the persisted profile again.
func (a *App) Reload(ctx context.Context) error {
	a.screen.Mount(ctx)
	return nil
}
