package analysis

import "time"

// Clock abstracts time for cache stamps and export filenames.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
