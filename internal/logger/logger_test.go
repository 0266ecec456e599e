package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
}

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "fetched time off events",
			fields:  Fields{"people": 2},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "failed to send message",
			err:     errors.New("channel_not_found"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(LevelInfo, &buf)

			l.log(tt.level, tt.message, tt.fields, tt.err)

			if logged := buf.Len() > 0; logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_EntryFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)
	l.now = fixedClock

	l.Error("failed to send message", Fields{"channel": "#pto"}, errors.New("not_in_channel"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v, output = %s", err, buf.String())
	}

	if entry.Timestamp != "2024-05-01T12:00:00Z" {
		t.Errorf("Timestamp = %q, want 2024-05-01T12:00:00Z", entry.Timestamp)
	}
	if entry.Level != "ERROR" {
		t.Errorf("Level = %q, want ERROR", entry.Level)
	}
	if entry.Error != "not_in_channel" {
		t.Errorf("Error = %q, want not_in_channel", entry.Error)
	}
	if entry.Fields["channel"] != "#pto" {
		t.Errorf("Fields[channel] = %v, want #pto", entry.Fields["channel"])
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := New(LevelInfo, &buf)
	l := base.With(Fields{"run_date": "2024/05/01", "component": "cli"})

	l.Info("message successfully sent", Fields{"component": "notifier"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if entry.Fields["run_date"] != "2024/05/01" {
		t.Errorf("Fields[run_date] = %v, want 2024/05/01", entry.Fields["run_date"])
	}
	if entry.Fields["component"] != "notifier" {
		t.Errorf("Fields[component] = %v, want entry field to win", entry.Fields["component"])
	}

	// The parent logger must not pick up the child's fields
	buf.Reset()
	base.Info("plain", nil)
	if strings.Contains(buf.String(), "run_date") {
		t.Errorf("base logger leaked child fields: %s", buf.String())
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"warn doesn't log at error", LevelError, LevelWarn, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.minLevel, &buf)

			l.log(tt.logLevel, "test", nil, nil)

			if logged := buf.Len() > 0; logged != tt.shouldLog {
				t.Errorf("shouldLog = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: " INFO ", want: LevelInfo},
		{in: "Warn", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "verbose", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLevel(%q) expected error, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("notify.sent")
	m.IncrCounter("notify.sent")
	m.AddCounter("events.fetched", 5)

	counters := m.GetSnapshot()["counters"].(map[string]int64)

	if counters["notify.sent"] != 2 {
		t.Errorf("notify.sent = %v, want 2", counters["notify.sent"])
	}
	if counters["events.fetched"] != 5 {
		t.Errorf("events.fetched = %v, want 5", counters["events.fetched"])
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("calendar.fetch", 100*time.Millisecond)
	m.RecordTiming("calendar.fetch", 200*time.Millisecond)
	m.RecordTiming("calendar.fetch", 150*time.Millisecond)

	timings := m.GetSnapshot()["timings"].(map[string]map[string]interface{})

	fetch := timings["calendar.fetch"]
	if fetch["count"].(int) != 3 {
		t.Errorf("count = %v, want 3", fetch["count"])
	}
	if fetch["min"].(string) != "100ms" {
		t.Errorf("min = %v, want 100ms", fetch["min"])
	}
	if fetch["max"].(string) != "200ms" {
		t.Errorf("max = %v, want 200ms", fetch["max"])
	}
	if fetch["average"].(string) != "150ms" {
		t.Errorf("average = %v, want 150ms", fetch["average"])
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	original := Default()
	SetDefault(New(LevelDebug, &buf))
	defer SetDefault(original)

	Debug("debug", nil)
	Info("info", Fields{"key": "value"})
	Warn("warn", nil)
	Error("error", Fields{"component": "test"}, errors.New("test"))

	if lines := strings.Count(buf.String(), "\n"); lines != 4 {
		t.Errorf("got %d log lines, want 4:\n%s", lines, buf.String())
	}

	IncrCounter("test")
	AddCounter("test", 2)
	RecordTiming("test", time.Second)

	snapshot := GetMetricsSnapshot()
	if snapshot["counters"].(map[string]int64)["test"] < 3 {
		t.Errorf("counter test = %v, want >= 3", snapshot["counters"])
	}
}
