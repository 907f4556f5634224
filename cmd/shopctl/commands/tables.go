package commands

import (
	"context"
	"fmt"

	"auto_service_queue/internal/adapter/persistence/repository"
	"auto_service_queue/internal/infrastructure/database"

	"github.com/urfave/cli/v3"
)

func TablesCreateAction(ctx context.Context, cmd *cli.Command) error {
	if err := loadEnvFile(cmd.String("env")); err != nil {
		return err
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	created, err := database.EnsureTables(ctx, ddb, repository.TableSpecs())
	if err != nil {
		return err
	}
	if len(created) == 0 {
		fmt.Println("All tables already exist")
		return nil
	}
	for _, name := range created {
		fmt.Printf("created %s\n", name)
	}
	return nil
}
