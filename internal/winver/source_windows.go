//go:build windows

package winver

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var procRtlGetNtVersionNumbers = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetNtVersionNumbers")

// HostSource returns a source backed by ntdll's RtlGetNtVersionNumbers, which
// unlike GetVersionEx is not subject to manifest-based version lies.
func HostSource() Source {
	return SourceFunc(rtlGetNtVersionNumbers)
}

func rtlGetNtVersionNumbers() (Version, bool) {
	if err := procRtlGetNtVersionNumbers.Find(); err != nil {
		return Version{}, false
	}

	var major, minor, build uint32
	procRtlGetNtVersionNumbers.Call(
		uintptr(unsafe.Pointer(&major)),
		uintptr(unsafe.Pointer(&minor)),
		uintptr(unsafe.Pointer(&build)),
	)
	if major == 0 {
		return Version{}, false
	}

	// the top nibble of the build number flags free/checked builds
	return Version{Major: major, Minor: minor, Build: build & 0x0fffffff}, true
}
