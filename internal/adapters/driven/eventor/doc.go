// Package eventor implements driven.CalendarSource against the Eventor
// iCalendar export endpoint.
//
// Requests are plain GETs with the filter encoded in the query string. The
// response body is streamed to the caller untouched. Requests are never
// retried: any transport error or non-2xx status is returned as-is.
package eventor
