package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/frahmantamala/rbac-console/internal/console"
	"github.com/frahmantamala/rbac-console/internal/permission"
	"github.com/frahmantamala/rbac-console/internal/role"
	"github.com/frahmantamala/rbac-console/internal/user"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start interactive console",
	Long:  `Manage users, roles and permissions from the terminal. Type 'help' once started.`,
	Run: func(cmd *cobra.Command, args []string) {
		startConsole(cmd)
	},
}

func startConsole(cmd *cobra.Command) {
	deps, err := initializeDependencies(configPath, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	con, err := console.New(deps.Shell, deps.Logger,
		console.Bind(console.Binding[user.User]{
			Panel:    deps.Users,
			Columns:  user.Columns(),
			Row:      user.Row,
			SetField: user.SetField,
		}),
		console.Bind(console.Binding[role.Role]{
			Panel:    deps.Roles,
			Columns:  role.Columns(),
			Row:      role.Row,
			SetField: role.SetField,
			Toggle:   role.ToggleDraftPermission,
			Details:  role.Checklist,
		}),
		console.Bind(console.Binding[permission.Permission]{
			Panel:    deps.Permissions,
			Columns:  permission.Columns(),
			Row:      permission.Row,
			SetField: permission.SetField,
			GroupBy:  permissionsByScope,
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start console: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := con.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		deps.Logger.Error("console stopped", "error", err)
		os.Exit(1)
	}
}

func permissionsByScope(perms []permission.Permission) []console.Group[permission.Permission] {
	groups := permission.ByScope(perms)
	out := make([]console.Group[permission.Permission], len(groups))
	for i, g := range groups {
		out[i] = console.Group[permission.Permission]{Title: g.Scope, Items: g.Permissions}
	}
	return out
}
