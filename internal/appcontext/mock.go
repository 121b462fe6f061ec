package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/wardrobe"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	w, _ := wardrobe.New()
//	mock := &appcontext.Mock{
//	    WardrobeFunc: func() (wardrobe.Wardrobe, error) { return w, nil },
//	}
//	cmd := list.NewCommand(mock)
type Mock struct {
	WardrobeFunc     func() (wardrobe.Wardrobe, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	ServerAddrFunc   func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
}

// Wardrobe returns a wardrobe using the mock function or nil.
func (m *Mock) Wardrobe() (wardrobe.Wardrobe, error) {
	if m.WardrobeFunc != nil {
		return m.WardrobeFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// ServerAddr returns the address using the mock function or "localhost:0".
func (m *Mock) ServerAddr() string {
	if m.ServerAddrFunc != nil {
		return m.ServerAddrFunc()
	}
	return "localhost:0"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
