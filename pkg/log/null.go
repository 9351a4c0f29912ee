package log

// nullLogger discards every log line, for callers that don't want the
// core writing to stdout.
type nullLogger struct{}

// NewNull returns a Logger that discards everything.
func NewNull() Logger {
	return &nullLogger{}
}

func (l *nullLogger) Infof(format string, args ...interface{})  {}
func (l *nullLogger) Errorf(format string, args ...interface{}) {}
func (l *nullLogger) Debugf(format string, args ...interface{}) {}
