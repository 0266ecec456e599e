package event

import (
	"testing"
	"time"
)

func TestNewWindow(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantMin string
		wantMax string
	}{
		{
			name:    "midday UTC",
			now:     time.Date(2024, time.May, 1, 13, 45, 0, 0, time.UTC),
			wantMin: "2024-05-01T00:00:00Z",
			wantMax: "2024-05-01T23:59:59Z",
		},
		{
			name:    "exactly midnight",
			now:     time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
			wantMin: "2024-05-01T00:00:00Z",
			wantMax: "2024-05-01T23:59:59Z",
		},
		{
			name:    "local time converted to UTC day",
			now:     time.Date(2024, time.April, 30, 20, 0, 0, 0, time.FixedZone("PDT", -7*60*60)),
			wantMin: "2024-05-01T00:00:00Z",
			wantMax: "2024-05-01T23:59:59Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.now)
			if got := w.MinRFC3339(); got != tt.wantMin {
				t.Errorf("MinRFC3339() = %q, want %q", got, tt.wantMin)
			}
			if got := w.MaxRFC3339(); got != tt.wantMax {
				t.Errorf("MaxRFC3339() = %q, want %q", got, tt.wantMax)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		dateTime string
		want     string
		wantErr  bool
	}{
		{
			name: "date only",
			date: "2024-05-01",
			want: "05/01",
		},
		{
			name:     "date-time only",
			dateTime: "2024-12-24T09:30:00Z",
			want:     "12/24",
		},
		{
			name:     "date-time keeps its own offset",
			dateTime: "2024-05-01T22:00:00-07:00",
			want:     "05/01",
		},
		{
			name:     "date preferred over date-time",
			date:     "2024-05-02",
			dateTime: "2024-06-15T09:00:00Z",
			want:     "05/02",
		},
		{
			name:    "neither set",
			wantErr: true,
		},
		{
			name:    "malformed date",
			date:    "May 1",
			wantErr: true,
		},
		{
			name:     "malformed date-time",
			dateTime: "2024-05-01 09:00",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDate(tt.date, tt.dateTime)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ResolveDate(%q, %q) expected error, got %q", tt.date, tt.dateTime, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q, %q) unexpected error: %v", tt.date, tt.dateTime, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q, %q) = %q, want %q", tt.date, tt.dateTime, got, tt.want)
			}
		})
	}
}
