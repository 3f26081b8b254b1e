package testutils

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	preFails []func()

	// waitOnFail blocks a failing spec until a human sends SIGUSR1, see fail_handler_unix.go
	waitOnFail = func() {}
)

func RegisterPreFailHandler(prefail func()) {
	preFails = append(preFails, prefail)
}

// RegisterCommonFailHandlers wires the pre-fail handlers into gomega.
// Suites call this after registering their own pre-fail handlers.
func RegisterCommonFailHandlers() {
	RegisterPreFailHandler(waitOnFail)
	RegisterFailHandler(failHandler)
}

func failHandler(message string, callerSkip ...int) {
	fmt.Fprintln(GinkgoWriter, "Fail handler msg", message)

	for _, prefail := range preFails {
		prefail()
	}
	Fail(message, callerSkip...)
}
