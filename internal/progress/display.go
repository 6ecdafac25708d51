package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// WaitDisplay shows that toastctl is waiting for a toast event.
type WaitDisplay struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	out          io.Writer

	mu       sync.Mutex
	spinner  *spinner.Spinner
	message  string
	deadline time.Time
	ticker   *time.Ticker
	done     chan struct{}
}

// NewWaitDisplay creates a display writing to stderr.
func NewWaitDisplay(caps TerminalCapabilities) *WaitDisplay {
	return NewWaitDisplayTo(caps, os.Stderr)
}

// NewWaitDisplayTo creates a display writing to out.
func NewWaitDisplayTo(caps TerminalCapabilities, out io.Writer) *WaitDisplay {
	return &WaitDisplay{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
	}
}

// Start shows msg until Succeed, Fail or Stop. A non-zero deadline adds a countdown.
func (d *WaitDisplay) Start(msg string, deadline time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.message = msg
	d.deadline = deadline

	if !d.capabilities.IsTTY {
		fmt.Fprintln(d.out, msg)
		return
	}

	d.spinner = spinner.New(spinner.CharSets[d.symbols.SpinnerSet], 100*time.Millisecond, spinner.WithWriter(d.out))
	d.spinner.Suffix = " " + d.suffixLocked()
	d.spinner.Start()

	if !deadline.IsZero() {
		d.ticker = time.NewTicker(time.Second)
		d.done = make(chan struct{})
		go d.countdown(d.ticker, d.done)
	}
}

func (d *WaitDisplay) countdown(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			d.mu.Lock()
			if d.spinner != nil {
				d.spinner.Lock()
				d.spinner.Suffix = " " + d.suffixLocked()
				d.spinner.Unlock()
			}
			d.mu.Unlock()
		case <-done:
			return
		}
	}
}

func (d *WaitDisplay) suffixLocked() string {
	msg := d.message
	if !d.deadline.IsZero() {
		msg = fmt.Sprintf("%s (%s)", msg, formatRemaining(time.Until(d.deadline)))
	}
	// leave room for the spinner glyph
	return truncate(msg, d.capabilities.Width-2)
}

// Succeed stops the spinner and prints msg with a checkmark.
func (d *WaitDisplay) Succeed(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	fmt.Fprintf(d.out, "%s %s\n", checkmark(d.symbols, d.capabilities.SupportsColor), msg)
}

// Fail stops the spinner and prints msg and err with a failure mark.
func (d *WaitDisplay) Fail(msg string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	mark := failureMark(d.symbols, d.capabilities.SupportsColor)
	if err != nil {
		fmt.Fprintf(d.out, "%s %s: %v\n", mark, msg, err)
		return
	}
	fmt.Fprintf(d.out, "%s %s\n", mark, msg)
}

// Stop removes the spinner without printing anything.
func (d *WaitDisplay) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *WaitDisplay) stopLocked() {
	if d.done != nil {
		close(d.done)
		d.done = nil
	}
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
