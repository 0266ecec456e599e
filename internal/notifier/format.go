package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/pto-notifier/internal/event"
)

const (
	// HeaderDateLayout is the date format used in the message header
	HeaderDateLayout = "2006/01/02"

	headerRule  = "-----"
	headerEmoji = ":palm_tree:"
)

// FormatDigest renders the PTO summary for now's UTC date.
// People are listed in lexicographic order; each person's events keep fetch order.
// With no events only the header is rendered.
func FormatDigest(events event.EventsByPerson, now time.Time) string {
	var msg strings.Builder

	msg.WriteString(headerRule + "\n")
	msg.WriteString(fmt.Sprintf("%s %s Approved PTO %s", headerEmoji, now.UTC().Format(HeaderDateLayout), headerEmoji))

	for _, name := range events.Names() {
		for _, evt := range events[name] {
			msg.WriteString(fmt.Sprintf("\n*%s*: _%s (%s)_", name, evt.PTOType, evt.Duration()))
		}
	}

	return msg.String()
}
