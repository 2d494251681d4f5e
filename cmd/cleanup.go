package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/webblaze/projectflow-be/config"
	"github.com/webblaze/projectflow-be/database"
	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/service"
)

// cleanupCmd runs both sweeps once and exits, for cron-style deployments
// that prefer an external scheduler over the in-process one.
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Run the expired-data sweeps once",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		mongoClient, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database(cfg.MongoDatabase)

		employeeRepo := repository.NewEmployeeRepo(mongoDb.Collection("employees"))
		projectRepo := repository.NewProjectRepo(mongoDb.Collection("projects"))
		imageService, err := service.NewImageService(cfg)
		if err != nil {
			log.Fatalf("Failed to init image store: %v", err)
		}
		cleanupService := service.NewCleanupService(employeeRepo, projectRepo, imageService, cfg)

		employees, err := cleanupService.SweepExpiredEmployees(ctx)
		if err != nil {
			log.Fatalf("Employee sweep failed: %v", err)
		}
		projects, err := cleanupService.SweepDeletedProjects(ctx)
		if err != nil {
			log.Fatalf("Project sweep failed: %v", err)
		}
		log.Printf("Cleanup done: %d expired employees, %d purged projects\n", employees, projects)
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}
