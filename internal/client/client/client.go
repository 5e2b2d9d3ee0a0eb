package client

import (
	"context"

	"github.com/dmitrijs2005/adminsettings/internal/client/settings"
)

// Client is the server API used by the CLI.
type Client interface {
	settings.IdentityService
	settings.DocumentStore

	Close() error
	Ping(ctx context.Context) error
	SignIn(ctx context.Context, email, password string) (*settings.Identity, error)
	CurrentUser(ctx context.Context) (*settings.Identity, error)
	SignOut()
}
