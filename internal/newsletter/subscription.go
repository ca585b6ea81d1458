package newsletter

import "time"

// Source tags where a subscription came from.
type Source string

// SourceWaitlist marks pre-launch signups; the only source the site emits today.
const SourceWaitlist Source = "waitlist"

// Subscription is a single newsletter signup. Email is unique across the
// collection, enforced by a pre-check at subscribe time rather than a
// store-level constraint.
type Subscription struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	SubscribedAt time.Time `bson:"subscribed_at" json:"subscribed_at"`
	Source       Source    `bson:"source" json:"source"`
}
