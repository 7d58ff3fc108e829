package outbound

// LoggerPort is the structured logger every service and adapter writes to.
// Field maps are attached to the entry as-is; article_id, user_id and stage
// are the keys the pipeline uses to correlate a generation.
type LoggerPort interface {
	Info(msg string)
	InfoWithFields(msg string, fields map[string]interface{})
	Error(err error, msg string)
	ErrorWithFields(err error, msg string, fields map[string]interface{})
	Debug(msg string)
	DebugWithFields(msg string, fields map[string]interface{})
	Warn(msg string)
	WarnWithFields(msg string, fields map[string]interface{})
}
