package testutils

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"

	. "github.com/onsi/ginkgo/v2"
)

// PrintTrimmedStack prints the stack of a failing assertion with test framework,
// module cache and runtime frames removed, so plain Expect(...) calls can be
// traced without ExpectWithOffset bookkeeping.
func PrintTrimmedStack() {
	fmt.Fprintln(GinkgoWriter, trimStack(debug.Stack()))
}

var skippedFrames = []*regexp.Regexp{
	regexp.MustCompile("runtime/debug"),
	regexp.MustCompile("/go/pkg/mod/"),
	regexp.MustCompile("vendor/"),
	regexp.MustCompile("suite_test.go"),
	regexp.MustCompile("src/testing/testing.go"),
	regexp.MustCompile("release-utils/testutils/"),
}

func trimStack(stack []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(stack))
	var (
		lines     []string
		skipCount int
		out       strings.Builder
	)
	// skip the goroutine header
	if scanner.Scan() {
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
	}
	for i := 0; i+1 < len(lines); i += 2 {
		if shouldSkipFrame(lines[i], lines[i+1]) {
			skipCount++
			continue
		}
		fmt.Fprintf(&out, "%v\n%v\n", lines[i], lines[i+1])
	}
	return fmt.Sprintf("Stack trace (skipped %v entries that matched filter criteria):\n%v", skipCount, out.String())
}

func shouldSkipFrame(functionLine, fileLine string) bool {
	for _, re := range skippedFrames {
		if re.MatchString(functionLine) || re.MatchString(fileLine) {
			return true
		}
	}
	return false
}
