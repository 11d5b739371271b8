package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nwcdlabs/codecommit-admin/pkg/cloud"
	"github.com/nwcdlabs/codecommit-admin/pkg/config"
	"github.com/nwcdlabs/codecommit-admin/pkg/db"
	"github.com/nwcdlabs/codecommit-admin/pkg/policydoc"
	"github.com/nwcdlabs/codecommit-admin/pkg/server"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/endpoints"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("CCADMIN_LOG_LEVEL") == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the ccadmin application server",
	Long: `Run the ccadmin application server

To run the server requires the DATABASE_URL environment variable and
standard AWS SDK credentials configuration.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
			os.Exit(1)
		}

		if cfg.DatabaseURL == "" && os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		logger, err := newLogger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to create logger:", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()

		gormDB, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		ident, err := cloud.NewIdentityAdapterFromEnv(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to configure AWS clients:", err)
			os.Exit(1)
		}

		templates, err := policydoc.NewTemplates(cfg.TemplatePath, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load policy templates:", err)
			os.Exit(1)
		}

		watchCtx, cancelWatch := context.WithCancel(context.Background())
		defer cancelWatch()
		go func() {
			if err := templates.Watch(watchCtx); err != nil {
				logger.Warn("template watcher stopped", zap.Error(err))
			}
		}()

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		cfg.BindAddress = host
		cfg.Port = port

		s := server.NewServer(gormDB, ident, templates, cfg, logger)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
