package testutil

import (
	"context"
	"fmt"
	"sync"

	"cloudtidy/internal/models"
	"cloudtidy/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Messages returns the formatted log lines for a level.
func (m *MockLogger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, fmt.Sprintf(e.Format, e.Args...))
		}
	}
	return out
}

// MockRemote implements remote.Remote with scriptable failures.
type MockRemote struct {
	mu sync.Mutex

	Nodes    map[string]models.Node
	LoginErr error
	ListErr  error

	// FailDelete/FailRename map node ids to the error their mutation returns.
	FailDelete map[string]error
	FailRename map[string]error

	LoginCalls []string
	ListCalls  int
	Deleted    []string
	Renamed    []RenameCall
}

type RenameCall struct {
	NodeID  string
	NewName string
}

func (m *MockRemote) Login(_ context.Context, account, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoginCalls = append(m.LoginCalls, account)
	return m.LoginErr
}

func (m *MockRemote) ListNodes(_ context.Context) (map[string]models.Node, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Nodes, nil
}

func (m *MockRemote) Delete(_ context.Context, nodeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailDelete[nodeID]; ok {
		return err
	}
	m.Deleted = append(m.Deleted, nodeID)
	return nil
}

func (m *MockRemote) Rename(_ context.Context, nodeID, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailRename[nodeID]; ok {
		return err
	}
	m.Renamed = append(m.Renamed, RenameCall{NodeID: nodeID, NewName: newName})
	return nil
}

// MockPrompter implements providers.PrompterInterface from scripted answers.
// Exhausted scripts return zero values, which decline confirmations.
type MockPrompter struct {
	mu sync.Mutex

	Lines    []string
	Secrets  []string
	Confirms []bool

	Asked  []string
	Output []string
}

func (m *MockPrompter) Line(label string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Asked = append(m.Asked, label)
	if len(m.Lines) == 0 {
		return "", nil
	}
	line := m.Lines[0]
	m.Lines = m.Lines[1:]
	return line, nil
}

func (m *MockPrompter) Secret(label string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Asked = append(m.Asked, label)
	if len(m.Secrets) == 0 {
		return "", nil
	}
	secret := m.Secrets[0]
	m.Secrets = m.Secrets[1:]
	return secret, nil
}

func (m *MockPrompter) Confirm(label string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Asked = append(m.Asked, label)
	if len(m.Confirms) == 0 {
		return false
	}
	answer := m.Confirms[0]
	m.Confirms = m.Confirms[1:]
	return answer
}

func (m *MockPrompter) Say(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Output = append(m.Output, fmt.Sprintf(format, args...))
}

// MockCompressor passes data through unchanged.
type MockCompressor struct {
	CompressErr   error
	DecompressErr error
	Closed        bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressErr != nil {
		return nil, m.CompressErr
	}
	return val, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressErr != nil {
		return nil, m.DecompressErr
	}
	return val, nil
}

func (m *MockCompressor) Close() { m.Closed = true }

// MockProgress counts progress updates.
type MockProgress struct {
	Added    int
	Finished bool
}

func (m *MockProgress) Add(n int) { m.Added += n }
func (m *MockProgress) Finish()   { m.Finished = true }

// NewMockProgressFactory records every bar it hands out.
func NewMockProgressFactory(bars *[]*MockProgress) providers.ProgressFactory {
	return func(_ string, _ int) providers.ProgressInterface {
		bar := &MockProgress{}
		*bars = append(*bars, bar)
		return bar
	}
}
