package main

import (
	"context"
	"fmt"
	"gestionforestal/config"
	"gestionforestal/connection"
	"gestionforestal/scheduler"
	"gestionforestal/services"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gestionforestal",
		Short:         "Forestry safety checklists and site visits",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(serveCmd(), migrateCmd(), createUserCmd(), deleteUserCmd())
	return root
}

func openDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := connection.DBConnection(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, db, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB()
			if err != nil {
				return err
			}
			if err := cfg.RequireSecret(); err != nil {
				return err
			}
			gin.SetMode(cfg.GinMode)

			if err := connection.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			cron, err := scheduler.StartScheduler(db, cfg.SessionPurgeSchedule)
			if err != nil {
				return fmt.Errorf("failed to add cron job: %w", err)
			}
			defer cron.Stop()

			return connection.StartServer(db, cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			if err := connection.Migrate(db); err != nil {
				return err
			}
			log.Println("Schema up to date")
			return nil
		},
	}
}

func createUserCmd() *cobra.Command {
	var in services.UserInput
	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create a user that can sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			if in.Password == "" {
				in.Password = os.Getenv("FORESTAL_PASSWORD")
			}
			user, err := services.CreateUser(context.Background(), db, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %q created (id %d)\n", user.Username, user.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Username, "username", "", "login name")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (or FORESTAL_PASSWORD)")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func deleteUserCmd() *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "deleteuser",
		Short: "Delete a user with their checklists, visits and sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			if err := services.DeleteUser(context.Background(), db, username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %q deleted\n", username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "login name")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
