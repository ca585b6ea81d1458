package status

import "time"

// StatusCheck records a single ping from a client of the marketing site.
// Records are immutable once written.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
