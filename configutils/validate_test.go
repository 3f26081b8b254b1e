package configutils_test

import (
	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/solo-io/release-utils/configutils"
	"github.com/solo-io/release-utils/errors"
)

var _ = Describe("Validate", func() {

	var cfg *configutils.Config

	BeforeEach(func() {
		cfg = &configutils.Config{
			Owner:        "solo-io",
			Repo:         "app",
			GithubToken:  "token",
			TargetCommit: "abc123",
			SlackWebhook: "https://hooks.slack.com/default",
		}
	})

	validationErrors := func(err error) []error {
		var merr *multierror.Error
		Expect(errors.As(err, &merr)).To(BeTrue())
		for _, e := range merr.Errors {
			Expect(e).To(errors.HaveInErrorChain(errors.MalformedInput))
		}
		return merr.Errors
	}

	It("accepts a complete config", func() {
		Expect(cfg.Validate(configutils.StepRun)).To(Succeed())
	})

	It("reports every missing release setting", func() {
		cfg.GithubToken = ""
		cfg.TargetCommit = ""
		errs := validationErrors(cfg.Validate(configutils.StepRelease))
		Expect(errs).To(HaveLen(2))
		Expect(errs[0].Error()).To(ContainSubstring("github_token"))
		Expect(errs[1].Error()).To(ContainSubstring("target_commit"))
	})

	It("only needs a webhook to notify", func() {
		Expect((&configutils.Config{SlackWebhook: "x"}).Validate(configutils.StepNotify)).To(Succeed())
		Expect((&configutils.Config{SlackRepoUrls: map[string]string{"app": "x"}}).Validate(configutils.StepNotify)).To(Succeed())
		Expect(validationErrors((&configutils.Config{}).Validate(configutils.StepNotify))).To(HaveLen(1))
	})

	It("needs everything to run", func() {
		Expect(validationErrors((&configutils.Config{}).Validate(configutils.StepRun))).To(HaveLen(5))
	})
})
