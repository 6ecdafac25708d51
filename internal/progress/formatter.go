package progress

import (
	"fmt"
	"time"
)

// formatRemaining renders the time left as "4m59s left", rounded to the second.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%s left", d.Round(time.Second))
}

// truncate shortens msg to fit width columns, counting runes.
func truncate(msg string, width int) string {
	if width <= 0 {
		return msg
	}
	runes := []rune(msg)
	if len(runes) <= width {
		return msg
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Checkmark
	if supportsColor && symbols.Checkmark == "✓" {
		mark = "\033[32m" + mark + "\033[0m" // Green
	}
	return mark
}

// failureMark returns the appropriate failure symbol
func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Failure
	if supportsColor && symbols.Failure == "✗" {
		mark = "\033[31m" + mark + "\033[0m" // Red
	}
	return mark
}
