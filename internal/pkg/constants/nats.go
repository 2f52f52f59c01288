package constants

// NATS Subjects
const (
	// Runs service
	SubjectRunStarted  = "run.started"
	SubjectRunFinished = "run.finished"

	// Live position feed
	SubjectLocationUpdate = "location.update"
)

// JetStream streams
const (
	StreamRun      = "RUN_STREAM"
	StreamLocation = "LOCATION_STREAM"
)

// JetStream durable consumers
const (
	ConsumerRunStartedLocation  = "run_started_location"
	ConsumerRunFinishedLocation = "run_finished_location"
	ConsumerLocationUpdate      = "location_update_location"
)
