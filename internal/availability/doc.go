// Package availability defines the values exchanged between the calendar scraper,
// the message formatter and the run report.
//
// A Result holds the requested days that the booking calendar shows as bookable,
// each paired with its booking link, in the order the days were requested. A Result
// that could not be produced (network failure, bad status, unparseable page) is
// empty and carries the reason in Err.
package availability
