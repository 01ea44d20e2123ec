package cmd

import (
	"context"
	"log"
	"market-marts/internal/repository"
	"market-marts/internal/service"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one staging->mart refresh and exit",
	Run:   RunOnce,
}

func RunOnce(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}
	defer appDep.Close()

	repo, err := repository.NewRepository(appDep.cfg, appDep.db.DB, appDep.log)
	if err != nil {
		log.Fatalf("Failed to create repository: %v", err)
	}

	services := service.NewService(appDep.cfg, appDep.log, repo)

	runCtx, cancel := context.WithTimeout(ctx, appDep.cfg.Pipeline.RunTimeout)
	defer cancel()

	if _, err := services.PipelineService.Run(runCtx); err != nil {
		log.Fatalf("Pipeline run failed: %v", err)
	}
}
