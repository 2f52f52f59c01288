package models

import "time"

// Now returns the current time in UTC. Every stored timestamp goes through it.
func Now() time.Time {
	return time.Now().UTC()
}
