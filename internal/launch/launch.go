package launch

import "time"

// Config is the single live launch-configuration document. Each write
// replaces the prior one entirely.
type Config struct {
	LaunchDate string    `bson:"launch_date" json:"launch_date"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
