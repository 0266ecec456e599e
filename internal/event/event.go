package event

import (
	"sort"
	"strings"
)

// TitleSeparator splits a calendar title into person name and PTO type
const TitleSeparator = " on "

// TimeOffEvent represents one approved time-off entry
type TimeOffEvent struct {
	PersonName string `json:"person_name"`
	PTOType    string `json:"pto_type,omitempty"` // Empty when the title has no type
	StartDate  string `json:"start_date"`         // MM/DD
	EndDate    string `json:"end_date"`           // MM/DD
}

// EventsByPerson groups time-off events by person name.
// Each slice keeps the order in which the calendar returned the events.
type EventsByPerson map[string][]*TimeOffEvent

// ParseTitle splits a title like "Alice on Vacation" into ("Alice", "Vacation").
// A title without the separator yields the whole title as name and an empty type.
// Anything after a second separator is ignored.
func ParseTitle(title string) (name, ptoType string) {
	parts := strings.Split(title, TitleSeparator)
	name = parts[0]
	if len(parts) > 1 {
		ptoType = parts[1]
	}
	return name, ptoType
}

// NewTimeOffEvent creates a TimeOffEvent from a calendar title and resolved MM/DD dates
func NewTimeOffEvent(title, startDate, endDate string) *TimeOffEvent {
	name, ptoType := ParseTitle(title)
	return &TimeOffEvent{
		PersonName: name,
		PTOType:    ptoType,
		StartDate:  startDate,
		EndDate:    endDate,
	}
}

// Duration returns the start date alone for single-day events, otherwise "start-end"
func (e *TimeOffEvent) Duration() string {
	if e.StartDate == e.EndDate {
		return e.StartDate
	}
	return e.StartDate + "-" + e.EndDate
}

// Add appends evt to its person's events, creating the entry on first sight
func (m EventsByPerson) Add(evt *TimeOffEvent) {
	m[evt.PersonName] = append(m[evt.PersonName], evt)
}

// Names returns the person names in lexicographic order
func (m EventsByPerson) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the total number of events across all people
func (m EventsByPerson) Count() int {
	total := 0
	for _, events := range m {
		total += len(events)
	}
	return total
}
