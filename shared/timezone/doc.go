// Package timezone keeps all time handling in the property's local
// timezone. Check-in and check-out dates, work schedules, and invoice
// issue dates are all hotel-local concepts, so every timestamp the
// application produces or parses goes through this package.
//
// Usage:
//
//	now := timezone.Now()                          // current time at the property
//	local := timezone.ToAppTime(someTime)          // convert into the property timezone
//	s := timezone.Format(t, "2006-01-02 15:04:05") // format in the property timezone
//	t, err := timezone.Parse("2006-01-02", "2026-01-01")
//	loc := timezone.GetLocation()
//
// The timezone comes from the APP_TIMEZONE environment variable and is
// loaded once when the package is imported. Use standard IANA names
// such as "UTC", "Asia/Jakarta", or "America/New_York".
package timezone
