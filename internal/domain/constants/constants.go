// Package constants holds shared domain constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)

const (
	// DefaultTargetCalories is the calorie budget assumed for users without a
	// calorie target record.
	DefaultTargetCalories = 2000

	// DefaultWeight is the body weight (kg) assumed for users without
	// body metrics history.
	DefaultWeight = 70

	// DefaultHeight is the body height (cm) assumed for users without
	// body metrics history.
	DefaultHeight = 170

	// DefaultBMI is the BMI assumed for users without body metrics history.
	DefaultBMI = 22

	// DefaultAge is the age assumed for users without body metrics history.
	DefaultAge = 25

	// DefaultActivityLevel is the activity label stamped onto synthesized
	// snapshots when no measurement exists.
	DefaultActivityLevel = "moderate"
)
