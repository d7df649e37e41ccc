package chachagen

// Logger receives the generator's log messages. Debugf is called only
// when IsDebugEnabled returns true.
type Logger interface {
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
	IsDebugEnabled() bool
}

type dummyLogger struct{}

func (l *dummyLogger) Infof(string, ...interface{})  {}
func (l *dummyLogger) Debugf(string, ...interface{}) {}
func (l *dummyLogger) IsDebugEnabled() bool          { return false }
