package moxml

import "github.com/sirupsen/logrus"

// logger is the package logger used by WriteObject and the decode-path
// debug trace. It defaults to warn level so the library is quiet unless a
// caller opts in.
var logger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the package logger. Passing nil restores the
// default.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}
