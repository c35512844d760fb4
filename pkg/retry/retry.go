package retry

import (
	"log"
	"time"
)

// Do runs fn up to attempts times, sleeping delay between failures.
// It returns nil as soon as fn succeeds, otherwise the last error.
// Used for transient storage failures (connection setup, ping).
func Do(label string, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		log.Printf("%s attempt %d/%d failed: %v", label, i+1, attempts, err)
		if i < attempts-1 {
			time.Sleep(delay)
		}
	}
	return err
}
