package logging

import "fmt"

// MockLogger records log calls for inspection in tests.
type MockLogger struct {
	Entries []MockEntry
}

// MockEntry is a single recorded log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
}

// mockChild forwards records to its root recorder with extra fields attached.
type mockChild struct {
	root   *MockLogger
	fields []Field
}

// NewMockLogger creates an empty recording logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.Entries = append(m.Entries, MockEntry{Level: level, Message: msg, Fields: fields})
}

// Debug records a debug-level message
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an info-level message
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warning-level message
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error-level message
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// WithError returns a child logger with an error field attached
func (m *MockLogger) WithError(err error) Logger {
	return &mockChild{root: m, fields: []Field{{Key: "error", Value: err}}}
}

// WithField returns a child logger with a field attached
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &mockChild{root: m, fields: []Field{{Key: key, Value: value}}}
}

// Fatal records a fatal-level message; it panics instead of exiting so
// tests can assert on it.
func (m *MockLogger) Fatal(msg string, fields ...Field) {
	m.record("fatal", msg, fields)
	panic(msg)
}

// Fatalf records a formatted fatal-level message and panics.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	formatted := fmt.Sprintf(msg, args...)
	m.record("fatal", formatted, nil)
	panic(formatted)
}

// HasMessage reports whether any recorded entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}

func (c *mockChild) join(fields []Field) []Field {
	return append(append([]Field{}, c.fields...), fields...)
}

func (c *mockChild) Debug(msg string, fields ...Field) { c.root.record("debug", msg, c.join(fields)) }
func (c *mockChild) Info(msg string, fields ...Field)  { c.root.record("info", msg, c.join(fields)) }
func (c *mockChild) Warn(msg string, fields ...Field)  { c.root.record("warn", msg, c.join(fields)) }
func (c *mockChild) Error(msg string, fields ...Field) { c.root.record("error", msg, c.join(fields)) }

func (c *mockChild) WithError(err error) Logger {
	return &mockChild{root: c.root, fields: append(c.join(nil), Field{Key: "error", Value: err})}
}

func (c *mockChild) WithField(key string, value interface{}) Logger {
	return &mockChild{root: c.root, fields: append(c.join(nil), Field{Key: key, Value: value})}
}

func (c *mockChild) Fatal(msg string, fields ...Field) {
	c.root.record("fatal", msg, c.join(fields))
	panic(msg)
}

func (c *mockChild) Fatalf(msg string, args ...interface{}) {
	formatted := fmt.Sprintf(msg, args...)
	c.root.record("fatal", formatted, nil)
	panic(formatted)
}
