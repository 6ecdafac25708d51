// Package health checks whether this host can show toasts: the operating
// system, PowerShell on PATH, the Windows version and the config files.
package health

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/ariel-frischer/toastkit/internal/config"
	"github.com/ariel-frischer/toastkit/internal/notify"
	"github.com/ariel-frischer/toastkit/internal/toast"
	"github.com/ariel-frischer/toastkit/internal/winver"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Options are the host facts the checks read. Zero fields use the real host.
type Options struct {
	// GOOS defaults to the running operating system
	GOOS string
	// LookPath defaults to exec.LookPath
	LookPath func(file string) (string, error)
	// Probe defaults to the process-wide probe
	Probe *winver.Probe
	// ConfigPaths are validated in order; missing files pass
	ConfigPaths []string
}

func (o Options) withDefaults() Options {
	if o.GOOS == "" {
		o.GOOS = notify.Platform()
	}
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.Probe == nil {
		o.Probe = winver.Host()
	}
	return o
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks(opts Options) *HealthReport {
	opts = opts.withDefaults()

	report := &HealthReport{
		Checks: make([]CheckResult, 0, 3+len(opts.ConfigPaths)),
		Passed: true,
	}
	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed {
			report.Passed = false
		}
	}

	add(CheckOperatingSystem(opts.GOOS))
	add(CheckPowerShell(opts.LookPath))
	add(CheckWindowsVersion(opts.Probe))
	for _, path := range opts.ConfigPaths {
		add(CheckConfigFile(path))
	}
	return report
}

// CheckOperatingSystem checks that toasts can be delivered on goos
func CheckOperatingSystem(goos string) CheckResult {
	if goos != "windows" {
		return CheckResult{
			Name:    "Operating system",
			Passed:  false,
			Message: fmt.Sprintf("%s has no Windows toast platform (render still works)", goos),
		}
	}
	return CheckResult{
		Name:    "Operating system",
		Passed:  true,
		Message: "windows",
	}
}

// CheckPowerShell checks that powershell is on PATH
func CheckPowerShell(lookPath func(string) (string, error)) CheckResult {
	path, err := lookPath("powershell")
	if err != nil {
		return CheckResult{
			Name:    "PowerShell",
			Passed:  false,
			Message: "powershell not found in PATH",
		}
	}
	return CheckResult{
		Name:    "PowerShell",
		Passed:  true,
		Message: path,
	}
}

// CheckWindowsVersion reports the host version and the templates it gets.
// An unavailable version passes: such hosts are treated as modern.
func CheckWindowsVersion(probe *winver.Probe) CheckResult {
	v, ok := probe.Version()
	if !ok {
		return CheckResult{
			Name:    "Windows version",
			Passed:  true,
			Message: "unavailable, assuming " + toast.TemplateGeneric,
		}
	}
	template := toast.TemplateGeneric
	if v.IsLegacy() {
		template = toast.TemplateText04 + "/" + toast.TemplateImageAndText04
	}
	return CheckResult{
		Name:    "Windows version",
		Passed:  true,
		Message: fmt.Sprintf("%s (%s)", v, template),
	}
}

// CheckConfigFile validates a config file; a missing file passes
func CheckConfigFile(path string) CheckResult {
	if err := config.ValidateConfigFile(path); err != nil {
		return CheckResult{
			Name:    "Config " + path,
			Passed:  false,
			Message: err.Error(),
		}
	}
	return CheckResult{
		Name:    "Config " + path,
		Passed:  true,
		Message: "valid",
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder
	for _, check := range report.Checks {
		if check.Passed {
			fmt.Fprintf(&b, "✓ %s: %s\n", check.Name, check.Message)
		} else {
			fmt.Fprintf(&b, "✗ Error: %s: %s\n", check.Name, check.Message)
		}
	}
	return b.String()
}
