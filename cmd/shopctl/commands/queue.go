package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func QueueShowAction(ctx context.Context, cmd *cli.Command) error {
	app, err := NewAppContext(ctx, cmd.String("env"))
	if err != nil {
		return err
	}
	defer app.Close()

	snapshot, err := app.Queue.Snapshot(ctx, cmd.String("customer"))
	if err != nil {
		return err
	}
	renderQueue(os.Stdout, snapshot)
	return nil
}

func renderQueue(w io.Writer, s entities.QueueSnapshot) {
	fmt.Fprintf(w, "Queue length: %d  In service: %d  Estimated wait: %s\n",
		s.QueueLength, s.ActiveJobs, usecase.FormatDuration(s.EstimatedWaitTime))
	if s.CustomerPosition != nil {
		fmt.Fprintf(w, "Customer position: %d\n", *s.CustomerPosition)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Status", "Job", "Customer", "Phone", "Services", "Since")
	appendEntries := func(status entities.JobStatus, entries []entities.QueueEntry) {
		for _, e := range entries {
			since := e.CreatedAt
			if e.StartTime != nil {
				since = *e.StartTime
			}
			table.Append(
				string(status),
				e.JobID,
				e.CustomerName,
				e.CustomerPhone,
				strings.Join(e.ServiceTypes, ", "),
				since.Format(time.DateTime),
			)
		}
	}
	appendEntries(entities.JobStatusStarted, s.StartedJobs)
	appendEntries(entities.JobStatusPending, s.PendingJobs)
	table.Render()
}
