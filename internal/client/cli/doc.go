// Package cli provides the interactive admin settings command-line client.
//
// It wires configuration, the gRPC API client and one settings.Screen into a
// REPL. Typical flow: prompt for credentials, load the profile, then edit and
// save it or change the password.
//
// Key features:
//   - Login / Logout
//   - Show / Set / Save the profile (first and last name; email is read-only)
//   - Password change (current, new, confirmation; read without echo)
//   - Email notification toggle (screen-local, not saved)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Notifications from the screen are printed as toasts.
package cli
