package scraper

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pfrederiksen/tour-watch/internal/availability"
	"github.com/pfrederiksen/tour-watch/internal/logger"
)

var december2024 = availability.Period{Year: 2024, Month: time.December}

func TestCheckAvailability(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		statusCode  int
		days        []int
		wantSlots   []availability.Slot
		wantError   bool
	}{
		{
			name: "one linked date",
			htmlContent: `
				<html>
					<body>
						<a href="/book/8"><div>8</div></a>
						<div>9</div>
					</body>
				</html>
			`,
			statusCode: http.StatusOK,
			days:       []int{8, 9, 10},
			wantSlots:  []availability.Slot{{Day: 8, Link: "/book/8"}},
		},
		{
			name:        "duplicate requests reported once",
			htmlContent: `<a href="/book/8"><div>8</div></a>`,
			statusCode:  http.StatusOK,
			days:        []int{8, 8},
			wantSlots:   []availability.Slot{{Day: 8, Link: "/book/8"}},
		},
		{
			name:        "server error",
			htmlContent: "Service Unavailable",
			statusCode:  http.StatusServiceUnavailable,
			days:        []int{8},
			wantSlots:   []availability.Slot{},
			wantError:   true,
		},
		{
			name:        "not found",
			htmlContent: "",
			statusCode:  http.StatusNotFound,
			days:        []int{8},
			wantSlots:   []availability.Slot{},
			wantError:   true,
		},
		{
			name:        "no dates requested",
			htmlContent: `<a href="/book/8"><div>8</div></a>`,
			statusCode:  http.StatusOK,
			days:        []int{},
			wantSlots:   []availability.Slot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "tour-watch") {
					t.Errorf("User-Agent = %q, should contain 'tour-watch'", userAgent)
				}

				q := r.URL.Query()
				if q.Get("p") != "calendar" || q.Get("ev") != "TOUR" || q.Get("mn") != "202412" {
					t.Errorf("unexpected query: %s", r.URL.RawQuery)
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			s := NewWithURL(server.URL)
			result := s.CheckAvailability(context.Background(), december2024, tt.days)

			if n := hits.Load(); n != 1 {
				t.Errorf("server hit %d times, want 1", n)
			}
			if tt.wantError && result.Err == nil {
				t.Error("CheckAvailability() expected Err to be set")
			}
			if !tt.wantError && result.Err != nil {
				t.Errorf("CheckAvailability() unexpected Err: %v", result.Err)
			}
			if !reflect.DeepEqual(result.Slots, tt.wantSlots) {
				t.Errorf("Slots = %+v, want %+v", result.Slots, tt.wantSlots)
			}
			if result.Period != december2024 {
				t.Errorf("Period = %v, want %v", result.Period, december2024)
			}
		})
	}
}

func TestCheckAvailability_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	var logs bytes.Buffer
	logger.SetDefault(logger.New(logger.LevelError, &logs))
	defer logger.SetDefault(logger.New(logger.LevelInfo, os.Stderr))

	s := NewWithURL(url)
	result := s.CheckAvailability(context.Background(), december2024, []int{8, 9, 10})

	if !strings.Contains(logs.String(), "mn=202412") {
		t.Errorf("error log should name the full calendar URL:\n%s", logs.String())
	}

	if !result.Empty() {
		t.Errorf("expected empty result, got %+v", result.Slots)
	}
	if result.Err == nil {
		t.Error("expected Err to describe the transport failure")
	}
}

func TestCheckAvailability_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<a href="/book/8"><div>8</div></a>`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewWithURL(server.URL).CheckAvailability(ctx, december2024, []int{8})
	if result.Err == nil || !result.Empty() {
		t.Errorf("expected canceled check to degrade to empty result, got %+v", result)
	}
}

func TestCheckAvailability_TruncatedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<html><body><a href="/book/8"><div>8</div>`))
	}))
	defer server.Close()

	result := NewWithURL(server.URL).CheckAvailability(context.Background(), december2024, []int{8})

	if result.Err == nil || !strings.Contains(result.Err.Error(), "parsing HTML") {
		t.Errorf("Err = %v, want a parsing HTML error", result.Err)
	}
	if !result.Empty() {
		t.Errorf("Slots = %+v, want none", result.Slots)
	}
}
