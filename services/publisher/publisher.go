package publisher

// Publisher represents an optional fan-out of qualifying listings to a
// stream for downstream consumers
type Publisher interface {
	// Publish appends one serialized listing to the stream
	Publish(message []byte) error

	// TrimStream trims the stream to the configured maximum length
	TrimStream() error

	// Close closes the publisher connection
	Close() error
}
