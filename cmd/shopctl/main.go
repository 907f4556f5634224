package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"auto_service_queue/cmd/shopctl/commands"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envFlag := &cli.StringFlag{
		Name:  "env",
		Usage: "path to the environment file",
		Value: ".env",
	}

	app := &cli.Command{
		Name:  "shopctl",
		Usage: "administration tool for the auto service queue",
		Flags: []cli.Flag{envFlag},
		Commands: []*cli.Command{
			{
				Name:  "tables",
				Usage: "DynamoDB table management",
				Commands: []*cli.Command{
					{
						Name:   "create",
						Usage:  "create missing tables and enable TTL",
						Action: commands.TablesCreateAction,
					},
				},
			},
			{
				Name:  "services",
				Usage: "service catalog management",
				Commands: []*cli.Command{
					{
						Name:   "seed",
						Usage:  "write the default service catalog",
						Action: commands.ServicesSeedAction,
					},
					{
						Name:   "list",
						Usage:  "list the service catalog",
						Action: commands.ServicesListAction,
					},
				},
			},
			{
				Name:  "queue",
				Usage: "queue inspection",
				Commands: []*cli.Command{
					{
						Name:  "show",
						Usage: "show pending and started jobs",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "customer",
								Usage: "customer id to locate in the queue",
							},
						},
						Action: commands.QueueShowAction,
					},
				},
			},
			{
				Name:  "jobs",
				Usage: "job lifecycle",
				Commands: []*cli.Command{
					{
						Name:  "set-status",
						Usage: "move a job to pending, started or completed",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "job",
								Usage:    "job id",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "status",
								Usage:    "pending, started or completed",
								Required: true,
							},
						},
						Action: commands.JobSetStatusAction,
					},
				},
			},
			{
				Name:  "sms",
				Usage: "notification history",
				Commands: []*cli.Command{
					{
						Name:  "logs",
						Usage: "list SMS notifications sent to a customer",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "customer",
								Usage:    "customer id",
								Required: true,
							},
						},
						Action: commands.SmsLogsAction,
					},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
