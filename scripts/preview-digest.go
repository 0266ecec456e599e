package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/pto-notifier/internal/event"
	"github.com/pfrederiksen/pto-notifier/internal/notifier"
)

func main() {
	now := time.Now().UTC()
	today := now.Format(event.MonthDayLayout)
	later := now.AddDate(0, 0, 4).Format(event.MonthDayLayout)

	// Sample calendar titles in fetch order
	events := event.EventsByPerson{}
	events.Add(event.NewTimeOffEvent("Bob on Sick", today, today))
	events.Add(event.NewTimeOffEvent("Alice on Vacation", today, later))
	events.Add(event.NewTimeOffEvent("Bob on Doctor Appointment", today, today))
	events.Add(event.NewTimeOffEvent("Company Holiday", today, today))

	msg := notifier.FormatDigest(events, now)

	if err := notifier.NewDryRunNotifier(os.Stdout).Notify(context.Background(), "#internal-time-off-notifications", msg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nPaste the message into Slack's message box to check mrkdwn rendering.")
}
