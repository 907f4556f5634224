package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"auto_service_queue/internal/domain/entities"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func JobSetStatusAction(ctx context.Context, cmd *cli.Command) error {
	app, err := NewAppContext(ctx, cmd.String("env"))
	if err != nil {
		return err
	}
	defer app.Close()

	change, err := app.Jobs.SetStatus(ctx, cmd.String("job"), cmd.String("status"))
	if err != nil {
		return err
	}
	fmt.Printf("Job %s: %s -> %s (customer #%d %s)\n",
		change.Job.ID, change.PreviousStatus, change.NewStatus,
		change.Customer.CustomerSequenceNumber, change.Customer.Name)
	return nil
}

func SmsLogsAction(ctx context.Context, cmd *cli.Command) error {
	app, err := NewAppContext(ctx, cmd.String("env"))
	if err != nil {
		return err
	}
	defer app.Close()

	logs, err := app.Notifications.ListLogs(ctx, cmd.String("customer"))
	if err != nil {
		return err
	}
	renderSmsLogs(os.Stdout, logs)
	return nil
}

func renderSmsLogs(w io.Writer, logs []entities.SmsLog) {
	table := tablewriter.NewWriter(w)
	table.Header("Sent At", "Job", "Event", "Status", "Attempts", "Message")
	for _, l := range logs {
		table.Append(
			l.CreatedAt.Format(time.DateTime),
			l.JobID,
			string(l.JobStatus),
			string(l.Status),
			fmt.Sprintf("%d", l.Attempts),
			l.Message,
		)
	}
	table.Render()
}
