package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/adminsettings/internal/client/client"
	"github.com/dmitrijs2005/adminsettings/internal/client/config"
	"github.com/dmitrijs2005/adminsettings/internal/client/settings"
	"github.com/dmitrijs2005/adminsettings/internal/logging"
)

type App struct {
	config *config.Config
	client client.Client
	screen *settings.Screen
	reader *bufio.Reader
	out    io.Writer
	logger logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	logger := logging.NewJSONLogger(os.Stderr, slog.LevelWarn)

	return newApp(c, apiClient, bufio.NewReader(os.Stdin), os.Stdout, logger), nil
}

func newApp(c *config.Config, apiClient client.Client, reader *bufio.Reader, out io.Writer, logger logging.Logger) *App {
	a := &App{config: c, client: apiClient, reader: reader, out: out, logger: logger}
	a.screen = settings.NewScreen(nil, apiClient, apiClient, toastNotifier{w: out}, logger.With("module", "settings"))
	return a
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.client.Close(); err != nil {
			a.logger.Warn(ctx, "close error", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.screen.Identity() != nil
}

func (a *App) getStatus() string {
	if id := a.screen.Identity(); id != nil {
		return fmt.Sprintf("(%s)", id.Email)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the admin settings CLI (type 'help' for commands)")

	if err := a.client.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Server %s is not reachable: %v\n", a.config.ServerEndpointAddr, err)
	} else {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
