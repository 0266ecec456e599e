// Package calendar fetches time-off events from a shared Google Calendar.
//
// The fetcher lists every event in a one-day window with recurring events expanded,
// parses each title into a person and PTO type, and groups the results by person.
// Access uses either an API key (public or domain-shared calendars) or a service
// account JSON credential with the read-only calendar scope.
package calendar
