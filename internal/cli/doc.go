// Package cli implements the command-line interface for pto-notifier.
//
// The root command loads configuration, captures the current time once, fetches the
// day's time-off events, renders the summary and posts it. Fetch and delivery failures
// are logged and the command still succeeds; only configuration errors fail the run.
package cli
