// Package winver reports whether the host runs a Windows generation whose toast
// subsystem only understands the legacy templates (Windows 8 / 8.1, NT 6.x).
//
// The answer never changes during the life of a process, so the package-level
// IsLegacyHost memoises the first probe.
package winver

import (
	"fmt"
	"log"
	"sync"
)

// LegacyMajor is the last NT major version with the restricted toast templates.
// NT 6.2 and 6.3 are Windows 8 and 8.1; Windows 10 reports 10.
const LegacyMajor = 6

// Version is an NT version triple.
type Version struct {
	Major uint32
	Minor uint32
	Build uint32
}

// IsLegacy reports whether the version belongs to the legacy toast generation.
func (v Version) IsLegacy() bool {
	return v.Major <= LegacyMajor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// Source returns the host version. ok is false when the version is unavailable.
type Source interface {
	GetVersion() (v Version, ok bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (Version, bool)

// GetVersion calls f.
func (f SourceFunc) GetVersion() (Version, bool) {
	return f()
}

// Probe answers the legacy question once and caches it.
type Probe struct {
	source Source

	once      sync.Once
	version   Version
	available bool
}

// NewProbe creates a probe over the given source.
func NewProbe(source Source) *Probe {
	return &Probe{source: source}
}

func (p *Probe) load() {
	p.once.Do(func() {
		if p.source != nil {
			p.version, p.available = p.source.GetVersion()
		}
		if !p.available {
			log.Printf("[winver] warning: host version unavailable, assuming a modern toast host")
		}
	})
}

// Version returns the cached version and whether it was available.
func (p *Probe) Version() (Version, bool) {
	p.load()
	return p.version, p.available
}

// IsLegacyHost reports whether the host is at or below LegacyMajor.
// An unavailable version counts as modern.
func (p *Probe) IsLegacyHost() bool {
	p.load()
	if !p.available {
		return false
	}
	return p.version.IsLegacy()
}

var (
	hostProbeOnce sync.Once
	hostProbe     *Probe
)

// Host returns the process-wide probe over HostSource.
func Host() *Probe {
	hostProbeOnce.Do(func() {
		hostProbe = NewProbe(HostSource())
	})
	return hostProbe
}

// IsLegacyHost reports whether the current host only supports legacy toasts.
func IsLegacyHost() bool {
	return Host().IsLegacyHost()
}
