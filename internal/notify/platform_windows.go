//go:build windows

package notify

import "github.com/ariel-frischer/toastkit/internal/toast"

func hostPlatform(cfg platformConfig) toast.Platform {
	if !toolAvailable("powershell") {
		return noopPlatform{}
	}
	return newPowerShellPlatform(cfg)
}
