//go:build !windows

package winver

// HostSource returns a source that is always unavailable off Windows.
func HostSource() Source {
	return SourceFunc(func() (Version, bool) { return Version{}, false })
}
