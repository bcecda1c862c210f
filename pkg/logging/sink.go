package logging

import (
	"io"
	"os"
)

// ScenarioSink tees JSON log output to stdout and to a per-scenario log
// file on disk, so a pcgctl run can be replayed from its own log after the
// console has scrolled away.
type ScenarioSink struct {
	file   *os.File
	Logger Logger
}

// OpenScenarioSink creates (or truncates) path and returns a sink whose
// Logger writes every entry to both stdout and that file.
func OpenScenarioSink(path string, level Level) (*ScenarioSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &ScenarioSink{
		file:   f,
		Logger: NewJSONLogger(io.MultiWriter(os.Stdout, f), level),
	}, nil
}

// Close closes the underlying log file.
func (s *ScenarioSink) Close() error {
	return s.file.Close()
}
