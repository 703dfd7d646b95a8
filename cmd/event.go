package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/frahmantamala/complaint-redressal/internal/core/events"
	"github.com/frahmantamala/complaint-redressal/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event management commands",
	Long:  `Publish test domain events through the in-process bus`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [event-type]",
	Short: "Publish a test event",
	Long:  `Publish a test event to the audit subscriber. Known types: complaint.filed, complaint.status_changed`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return publishTestEvent(args[0])
	},
}

var eventData string

func publishTestEvent(eventType string) error {
	lg := logger.LoggerWrapper()

	if !slices.Contains(events.KnownEventTypes, eventType) {
		lg.Warn("publishing an event type nothing in the service emits", "event_type", eventType)
	}

	data := map[string]interface{}{}
	if err := json.Unmarshal([]byte(eventData), &data); err != nil {
		data = map[string]interface{}{"message": eventData}
	}
	data["source"] = "cli-command"

	bus := events.NewEventBus(lg)
	events.SubscribeAudit(bus, lg)
	if !slices.Contains(events.KnownEventTypes, eventType) {
		bus.Subscribe(eventType, events.NewAuditHandler(lg))
	}

	event := events.NewGenericEvent(eventType, data)
	if err := bus.PublishSync(context.Background(), event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	lg.Info("test event published", "event_type", eventType, "event_id", event.ID)
	return nil
}

func init() {
	publishEventCmd.Flags().StringVar(&eventData, "data", "test message", "Event payload, a JSON object or a plain message")

	eventCmd.AddCommand(publishEventCmd)
}
