// Package event provides the time-off types produced by the calendar fetcher.
//
// A calendar entry titled "Alice on Vacation" becomes a TimeOffEvent for Alice with
// PTO type "Vacation". Events are grouped per person in EventsByPerson, which is built
// fresh on every run and never persisted.
package event
