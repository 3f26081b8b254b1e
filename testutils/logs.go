package testutils

import (
	"github.com/fgrosse/zaptest"
	"github.com/solo-io/release-utils/contextutils"

	. "github.com/onsi/ginkgo/v2"
)

// SetupLog routes library logging into the ginkgo writer so it only shows up for failing specs.
func SetupLog() {
	logger := zaptest.LoggerWriter(GinkgoWriter)
	contextutils.SetFallbackLogger(logger.Sugar())
}

// RegisterSuite is the common preamble of every suite in this module.
func RegisterSuite() {
	RegisterPreFailHandler(PrintTrimmedStack)
	RegisterCommonFailHandlers()
	SetupLog()
}
