//go:build !windows

package notify

import "github.com/ariel-frischer/toastkit/internal/toast"

// hostPlatform returns a no-op platform off Windows
func hostPlatform(_ platformConfig) toast.Platform {
	return noopPlatform{}
}
