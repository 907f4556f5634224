package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func ServicesSeedAction(ctx context.Context, cmd *cli.Command) error {
	app, err := NewAppContext(ctx, cmd.String("env"))
	if err != nil {
		return err
	}
	defer app.Close()

	n, err := app.Catalog.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("seed service types: %w", err)
	}
	fmt.Printf("Seeded %d service types\n", n)
	return nil
}

func ServicesListAction(ctx context.Context, cmd *cli.Command) error {
	app, err := NewAppContext(ctx, cmd.String("env"))
	if err != nil {
		return err
	}
	defer app.Close()

	items, err := app.Catalog.ListServiceTypes(ctx)
	if err != nil {
		return err
	}
	renderServiceTypes(os.Stdout, items)
	return nil
}

func renderServiceTypes(w io.Writer, items []entities.ServiceType) {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Duration", "Minutes", "Description")
	for _, st := range items {
		table.Append(
			st.Name,
			usecase.FormatDuration(st.EstimatedDurationMinutes),
			strconv.Itoa(st.EstimatedDurationMinutes),
			st.Description,
		)
	}
	table.Render()
}
