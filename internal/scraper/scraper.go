package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dghubble/sling"
	"golang.org/x/net/html/atom"

	"github.com/pfrederiksen/tour-watch/internal/availability"
	"github.com/pfrederiksen/tour-watch/internal/logger"
)

const (
	CalendarURL = "https://kilmainhamgaol.admit-one.eu/"
	EventCode   = "TOUR"
	UserAgent   = "tour-watch/1.0 (github.com/pfrederiksen/tour-watch)"
	Timeout     = 30 * time.Second

	// cellSelector matches the elements that hold a day number
	cellSelector = "div"
)

// calendarQuery is the query string of the month view
type calendarQuery struct {
	Page  string `url:"p"`
	Event string `url:"ev"`
	Month string `url:"mn"`
}

// Scraper handles fetching and parsing the booking calendar
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a new Scraper for the public booking calendar
func New() *Scraper {
	return NewWithURL(CalendarURL)
}

// NewWithURL creates a Scraper that queries the calendar at baseURL
func NewWithURL(baseURL string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: baseURL,
	}
}

// RequestURL returns the calendar URL queried for period
func (s *Scraper) RequestURL(period availability.Period) (string, error) {
	req, err := s.newRequest(context.Background(), period)
	if err != nil {
		return "", err
	}
	return req.URL.String(), nil
}

// CheckAvailability fetches the calendar for period and returns the requested days
// that are bookable, in request order.
//
// It never returns an error: a failed fetch or an unreadable page is logged and
// yields an empty Result whose Err explains what went wrong.
func (s *Scraper) CheckAvailability(ctx context.Context, period availability.Period, days []int) availability.Result {
	days = availability.UniqueDays(days)

	start := time.Now()
	slots, err := s.fetchAvailability(ctx, period, days)
	logger.RecordTiming("calendar.fetch", time.Since(start))

	if err != nil {
		requestURL, urlErr := s.RequestURL(period)
		if urlErr != nil {
			requestURL = s.url
		}
		logger.IncrCounter("calendar.fetch_failed")
		logger.Error("Error fetching availability", logger.Fields{
			"period": period.String(),
			"url":    requestURL,
		}, err)
		return availability.Failed(period, err)
	}

	result := availability.Result{Period: period, Slots: slots}
	logger.Info("Checked availability", logger.Fields{
		"period":    period.String(),
		"requested": days,
		"available": result.Days(),
	})

	return result
}

func (s *Scraper) newRequest(ctx context.Context, period availability.Period) (*http.Request, error) {
	req, err := sling.New().
		Base(s.url).
		Set("User-Agent", UserAgent).
		QueryStruct(&calendarQuery{
			Page:  "calendar",
			Event: EventCode,
			Month: period.Code(),
		}).
		Request()
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return req.WithContext(ctx), nil
}

// fetchAvailability downloads the month page and extracts the bookable days
func (s *Scraper) fetchAvailability(ctx context.Context, period availability.Period, days []int) ([]availability.Slot, error) {
	req, err := s.newRequest(ctx, period)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseAvailability(resp.Body, days)
}

// parseAvailability extracts the booking links for days from a calendar page
func parseAvailability(r io.Reader, days []int) ([]availability.Slot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	slots := make([]availability.Slot, 0, len(days))
	for _, day := range days {
		link, ok := bookingLink(doc, day)
		if !ok {
			logger.Debug("Date not available", logger.Fields{"date": day})
			continue
		}
		slots = append(slots, availability.Slot{Day: day, Link: link})
	}

	return slots, nil
}

// bookingLink finds the first day cell whose text is exactly the day number and
// returns the href of the anchor directly wrapping it.
func bookingLink(doc *goquery.Document, day int) (string, bool) {
	text := strconv.Itoa(day)

	cell := doc.Find(cellSelector).FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return sel.Text() == text
	}).First()
	if cell.Length() == 0 {
		return "", false
	}

	parent := cell.Parent()
	if parent.Length() == 0 || parent.Nodes[0].DataAtom != atom.A {
		return "", false
	}

	return parent.Attr("href")
}
