package changelogutils

import (
	"github.com/rotisserie/eris"
)

var (
	GenerateReleaseBodyError = func(err error) error {
		return eris.Wrapf(err, "unable to generate release body from template")
	}
)
