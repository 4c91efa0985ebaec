// Package timezone provides timezone utilities for the application.
//
// All date and clock-time handling in the booking core happens in the single
// application timezone configured via APP_TIMEZONE; per-customer timezone
// conversion is out of scope.
//
// Usage:
//
//	now := timezone.Now()                   // current time in app timezone
//	t, err := timezone.Parse("2006-01-02", "2024-01-01")
//	formatted := timezone.Format(t, time.RFC3339)
//
// Use standard IANA timezone database names ("UTC", "Asia/Jakarta",
// "America/New_York") for reliable cross-platform behavior.
package timezone
