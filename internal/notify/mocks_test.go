package notify

import (
	"context"
	"io"
	"sync"
)

// MockRunner plays back scripted listener output instead of starting PowerShell.
type MockRunner struct {
	mu sync.Mutex

	lines    []string
	startErr error
	waitErr  error
	holdOpen bool

	Scripts []string
}

// NewMockRunner creates a runner whose process exits without output.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// WithLines sets the stdout lines of the process.
func (m *MockRunner) WithLines(lines ...string) *MockRunner {
	m.lines = lines
	return m
}

// WithStartError makes Start fail.
func (m *MockRunner) WithStartError(err error) *MockRunner {
	m.startErr = err
	return m
}

// WithWaitError makes the process exit with err.
func (m *MockRunner) WithWaitError(err error) *MockRunner {
	m.waitErr = err
	return m
}

// HoldOpen keeps stdout open after the scripted lines until the context is done.
func (m *MockRunner) HoldOpen() *MockRunner {
	m.holdOpen = true
	return m
}

// LastScript returns the most recently started script.
func (m *MockRunner) LastScript() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Scripts) == 0 {
		return ""
	}
	return m.Scripts[len(m.Scripts)-1]
}

func (m *MockRunner) Start(ctx context.Context, script string) (Process, error) {
	m.mu.Lock()
	m.Scripts = append(m.Scripts, script)
	lines := append([]string{}, m.lines...)
	m.mu.Unlock()

	if m.startErr != nil {
		return nil, m.startErr
	}

	pr, pw := io.Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer pw.Close()
		for _, l := range lines {
			if _, err := io.WriteString(pw, l+"\n"); err != nil {
				return
			}
		}
		if m.holdOpen {
			<-ctx.Done()
		}
	}()

	return &mockProcess{stdout: pr, done: done, waitErr: m.waitErr}, nil
}

type mockProcess struct {
	stdout  io.Reader
	done    chan struct{}
	waitErr error
}

func (p *mockProcess) Stdout() io.Reader { return p.stdout }

func (p *mockProcess) Wait() error {
	<-p.done
	return p.waitErr
}
