package logging

import "go.uber.org/zap"

type zapLogger struct {
	s *zap.SugaredLogger
}

func (z zapLogger) Error(msg string) { z.s.Error(msg) }
func (z zapLogger) Warn(msg string)  { z.s.Warn(msg) }
func (z zapLogger) Info(msg string)  { z.s.Info(msg) }

// FromZap adapts a zap logger to the Logger interface, so production code
// can satisfy the same seam the harness injects its Recorder through.
func FromZap(l *zap.Logger) Logger {
	return zapLogger{s: l.Sugar()}
}
