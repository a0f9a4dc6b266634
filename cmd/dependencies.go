package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/crud"
	"github.com/frahmantamala/rbac-console/internal/core/events"
	"github.com/frahmantamala/rbac-console/internal/permission"
	"github.com/frahmantamala/rbac-console/internal/role"
	"github.com/frahmantamala/rbac-console/internal/shell"
	"github.com/frahmantamala/rbac-console/internal/user"
	"github.com/frahmantamala/rbac-console/pkg/logger"
)

type Dependencies struct {
	Config      *internal.Config
	Logger      *slog.Logger
	EventBus    *events.EventBus
	Users       *crud.Panel[user.User]
	Roles       *crud.Panel[role.Role]
	Permissions *crud.Panel[permission.Permission]
	Shell       *shell.Shell
}

// initializeDependencies loads config and builds the panels. Logs go to logOut
// so the console can keep them off its own output.
func initializeDependencies(path string, logOut io.Writer) (*Dependencies, error) {
	config, err := loadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.InitWriter(logOut, config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	policy, err := crud.ParseIDPolicy(config.Console.IDPolicy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse id policy: %w", err)
	}
	tab, err := shell.ParseTab(config.Console.DefaultTab)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default tab: %w", err)
	}

	bus := events.NewEventBus(lg)
	bus.Subscribe(events.Wildcard, func(ctx context.Context, e events.Event) error {
		lg.Debug("store changed", "event_type", e.EventType(), "payload", e.Payload())
		return nil
	})

	opts := []crud.Option{
		crud.WithIDPolicy(policy),
		crud.WithEventBus(bus),
		crud.WithLogger(lg),
	}
	users := user.NewPanel(config.Console.Seed, opts...)
	roles := role.NewPanel(config.Console.Seed, opts...)
	perms := permission.NewPanel(config.Console.Seed, opts...)

	sh, err := shell.New(tab, users, roles, perms)
	if err != nil {
		return nil, fmt.Errorf("failed to build shell: %w", err)
	}

	lg.Info("panels ready",
		"id_policy", policy,
		"seeded", config.Console.Seed,
		"users", users.Len(),
		"roles", roles.Len(),
		"permissions", perms.Len())

	return &Dependencies{
		Config:      config,
		Logger:      lg,
		EventBus:    bus,
		Users:       users,
		Roles:       roles,
		Permissions: perms,
		Shell:       sh,
	}, nil
}
