package main

import (
	"fmt"
	"os"
	"time"

	"taskplanner/connection"
	"taskplanner/notifier"
	"taskplanner/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taskplanner",
		Short: "Personal task management API",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	})

	cmd.AddCommand(notifyCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "schedule",
		Short: "Run the notification job every minute",
		Run: func(cmd *cobra.Command, args []string) {
			scheduler.StartScheduler()
		},
	})

	return cmd
}

func serve() {
	gin.SetMode(gin.ReleaseMode)
	connection.StartServer()
}

func notifyCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Scan tasks and create reminder, due-soon, overdue and completion notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connection.DBConnection()
			if err != nil {
				return err
			}
			scanner := notifier.New(notifier.NewGormStore(db))
			_, err = scanner.Run(time.Now(), dryRun)
			return err
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Show what notifications would be sent without actually sending them")

	return cmd
}
