package interfaces

// Logger is the structured logging seam. Fields carry the structured
// context; nil fields are allowed.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
