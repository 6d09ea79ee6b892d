// Package scraper provides HTTP fetching and HTML parsing for the Kilmainham Gaol
// booking calendar.
//
// The calendar page for a month lists one cell per day. A day that can be booked has
// its cell wrapped in a link to the booking page; sold-out days, past days and days
// from neighbouring months are plain cells. The scraper fetches one month and reports
// which of the requested days are wrapped in a link, and where that link points.
//
// Day cells are matched by exact text against the first matching cell in document
// order. The search is not scoped to the current month's grid, so a leading or
// trailing day from a neighbouring month that appears earlier on the page can shadow
// the real one.
package scraper
