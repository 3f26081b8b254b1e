package ciutils

import (
	"io"

	"github.com/sethvargo/go-githubactions"
)

// SetFailed reports err as an error annotation on the workflow run.
func SetFailed(w io.Writer, err error) {
	if err == nil {
		return
	}
	githubactions.New(githubactions.WithWriter(w)).Errorf("%s", err.Error())
}
