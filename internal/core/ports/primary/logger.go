package primary

// Logger is the structured logging interface services and adapters consume.
// Arguments are alternating key/value pairs.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}
