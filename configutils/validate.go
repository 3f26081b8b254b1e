package configutils

import (
	"github.com/hashicorp/go-multierror"

	"github.com/solo-io/release-utils/errors"
)

type Step string

const (
	StepRelease Step = "release"
	StepNotify  Step = "notify"
	// StepRun releases and notifies in one process
	StepRun Step = "run"
)

// Validate reports every setting the step needs but does not have.
func (c *Config) Validate(step Step) error {
	var result *multierror.Error
	require := func(value, key string) {
		if value == "" {
			result = multierror.Append(result, errors.MalformedInputError("%s is required for %s", key, step))
		}
	}

	if step == StepRelease || step == StepRun {
		require(c.GithubToken, KeyGithubToken)
		require(c.Owner, KeyOwner)
		require(c.Repo, KeyRepo)
		require(c.TargetCommit, KeyTargetCommit)
	}
	if step == StepNotify || step == StepRun {
		if c.SlackWebhook == "" && len(c.SlackRepoUrls) == 0 {
			result = multierror.Append(result, errors.MalformedInputError("%s is required for %s", KeySlackWebhook, step))
		}
	}
	return result.ErrorOrNil()
}
