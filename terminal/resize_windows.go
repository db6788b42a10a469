//go:build windows

package terminal

import "os"

// Windows has no SIGWINCH; resize must be polled elsewhere. Registering
// for nothing keeps ListenForResize's API uniform across platforms.
func notifySIGWINCH(ch chan<- os.Signal) {}
