package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"sitebuilder-be/pkg/events"
	pktNats "sitebuilder-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	natsURL     string
	durableName string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the content event stream",
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print content-change events as they are published",
	RunE: func(cmd *cobra.Command, args []string) error {
		url := natsURL
		if url == "" {
			url = cfg.App.NatsURL
		}
		if url == "" {
			return fmt.Errorf("no NATS url: set NATS_URL or pass --nats")
		}

		sub, err := pktNats.NewSubscriber(url)
		if err != nil {
			return err
		}
		defer sub.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err = sub.Subscribe(ctx, events.SiteContentChanged, durableName, func(_ context.Context, evt events.Event) error {
			payload, _ := json.Marshal(evt.Payload())
			fmt.Printf("%s %s %s\n",
				color.CyanString(evt.Timestamp().Format("15:04:05")),
				color.YellowString(evt.EventType()),
				payload,
			)
			return nil
		})
		if err != nil {
			return err
		}

		color.Green("Listening on %s (Ctrl+C to stop)", pktNats.Subject(events.SiteContentChanged))
		<-ctx.Done()
		return nil
	},
}

func init() {
	eventsTailCmd.Flags().StringVar(&natsURL, "nats", "", "NATS url (defaults to NATS_URL)")
	eventsTailCmd.Flags().StringVar(&durableName, "durable", "cmsctl-tail", "durable consumer name")
	eventsCmd.AddCommand(eventsTailCmd)
}
