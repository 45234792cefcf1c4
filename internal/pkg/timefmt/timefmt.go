package timefmt

import "time"

// Layout renders as yyyy-MM-dd hh:mm:ss with a 24-hour clock.
const Layout = "2006-01-02 15:04:05"

// Expiration renders base shifted by offsetSeconds, in base's location.
func Expiration(base time.Time, offsetSeconds int64) string {
	return base.Add(time.Duration(offsetSeconds) * time.Second).Format(Layout)
}

// FromMillis renders a millisecond epoch timestamp in loc.
func FromMillis(ms int64, loc *time.Location) string {
	return time.UnixMilli(ms).In(loc).Format(Layout)
}
