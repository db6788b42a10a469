//go:build !windows

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

func notifySIGWINCH(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGWINCH)
}
