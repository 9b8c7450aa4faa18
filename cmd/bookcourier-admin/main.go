// bookcourier-admin is an operator CLI for the BookCourier backend. It signs
// in with backend credentials, keeps the session on disk between invocations,
// and exposes the admin and fulfillment operations of the gateway.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bookcourier/ui-gateway/internal/adapters/filestore"
	"github.com/bookcourier/ui-gateway/internal/adapters/restapi"
	"github.com/bookcourier/ui-gateway/internal/bootstrap"
	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/service"
)

// cliContext carries the wired services plus the on-disk session state.
type cliContext struct {
	Logger   *slog.Logger
	Sessions *service.SessionService
	Orders   *service.OrderService
	Admin    *service.RoleAdminService

	stateDir string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cli, err := buildCLI(logger)
	if err != nil {
		logger.ErrorContext(ctx, "setup failed", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal setup failure to shell scripts
	}

	root := newRootCommand(cli)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1) //nolint:forbidigo // CLI must propagate command failure to callers
	}
}

func buildCLI(logger *slog.Logger) (*cliContext, error) {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return nil, err
	}

	client, err := restapi.NewClient(restapi.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build backend client: %w", err)
	}

	stateDir, err := cliStateDir()
	if err != nil {
		return nil, err
	}
	store, err := filestore.NewSessionStore(filepath.Join(stateDir, "sessions"))
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	orderGateway := restapi.NewOrderGateway(client)

	return &cliContext{
		Logger: logger,
		Sessions: service.NewSessionService(service.SessionServiceOptions{
			Users:    restapi.NewUserGateway(client),
			Sessions: store,
			TTL:      cfg.Session.TTL,
		}),
		Orders: service.NewOrderService(service.OrderServiceOptions{
			Orders:   orderGateway,
			Payments: restapi.NewPaymentGateway(client),
			Books:    restapi.NewBookGateway(client),
		}),
		Admin: service.NewRoleAdminService(service.RoleAdminServiceOptions{
			Admin: restapi.NewAdminGateway(client),
		}),
		stateDir: stateDir,
	}, nil
}

func newRootCommand(cli *cliContext) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookcourier-admin",
		Short:         "Operator CLI for the BookCourier backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCommand(cli),
		newLogoutCommand(cli),
		newWhoamiCommand(cli),
		newUsersCommand(cli),
		newRequestsCommand(cli),
		newOrdersCommand(cli),
	)
	return root
}

// cliStateDir returns the directory holding CLI state (persisted sessions).
func cliStateDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "bookcourier-admin"), nil
}

// currentSession restores the persisted session, failing with a hint when
// nobody is signed in or the session has expired.
func (c *cliContext) currentSession(ctx context.Context) (*domainauth.Session, error) {
	id, err := c.readSessionID()
	if err != nil {
		return nil, err
	}
	sess, err := c.Sessions.Restore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("session expired or revoked, run `bookcourier-admin login`: %w", err)
	}
	return sess, nil
}

// authContext returns a context carrying the persisted session's bearer token.
func (c *cliContext) authContext(ctx context.Context) (context.Context, *domainauth.Session, error) {
	sess, err := c.currentSession(ctx)
	if err != nil {
		return nil, nil, err
	}
	return domainauth.WithToken(ctx, sess.Token), sess, nil
}

func (c *cliContext) sessionIDPath() string {
	return filepath.Join(c.stateDir, "current-session")
}

func (c *cliContext) writeSessionID(id string) error {
	if err := os.MkdirAll(c.stateDir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(c.sessionIDPath(), []byte(id+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session id: %w", err)
	}
	return nil
}

func (c *cliContext) readSessionID() (string, error) {
	raw, err := os.ReadFile(c.sessionIDPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("not signed in, run `bookcourier-admin login`")
		}
		return "", fmt.Errorf("read session id: %w", err)
	}
	id := strings.TrimSpace(string(raw))
	if id == "" {
		return "", fmt.Errorf("not signed in, run `bookcourier-admin login`")
	}
	return id, nil
}

func (c *cliContext) clearSessionID() error {
	if err := os.Remove(c.sessionIDPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session id: %w", err)
	}
	return nil
}
