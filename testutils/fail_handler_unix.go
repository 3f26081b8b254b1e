//go:build !windows

package testutils

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
)

const WaitOnFailEnvVar = "WAIT_ON_FAIL"

func init() {
	waitOnFail = func() {
		if os.Getenv(WaitOnFailEnvVar) == "0" {
			return
		}

		if os.Getenv(WaitOnFailEnvVar) == "1" || isDebuggerPresent() {
			c := make(chan os.Signal, 1)
			signal.Notify(c, syscall.SIGUSR1)
			defer signal.Reset(syscall.SIGUSR1)
			fmt.Println("We are here:")
			debug.PrintStack()
			fmt.Printf("Waiting for human intervention. to continue, run 'kill -SIGUSR1 %d'\n", os.Getpid())
			<-c
		}
	}
}

func isDebuggerPresent() bool {
	f, err := os.ReadFile("/proc/self/status")
	if err != nil {
		// no status so we don't know
		return false
	}
	status := string(f)
	if !strings.Contains(status, "TracerPid:") {
		return false
	}
	// a zero tracer pid means nothing is attached
	return !strings.Contains(status, "TracerPid:\t0")
}
