package configutils_test

import (
	"context"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/solo-io/release-utils/configutils"
	"github.com/solo-io/release-utils/errors"
	"github.com/solo-io/release-utils/releaseutils"
	"github.com/solo-io/release-utils/slackutils"
)

var _ = Describe("Load", func() {

	const configYaml = `
owner: solo-io
repo: from-file
base_branch: develop
format: markdown
dry_run: true
window_strategy:
- commit
- publish
slack_repo_urls:
  app: https://hooks.slack.com/app
`

	var (
		ctx context.Context
		fs  afero.Fs
		env map[string]string
	)

	BeforeEach(func() {
		ctx = context.Background()
		fs = afero.NewMemMapFs()
		env = map[string]string{}
		Expect(afero.WriteFile(fs, "/etc/releasectl.yaml", []byte(configYaml), 0644)).To(Succeed())
	})

	load := func(path string, overrides map[string]interface{}) (*configutils.Config, error) {
		return configutils.Load(ctx, configutils.LoadOptions{
			Fs:        fs,
			Path:      path,
			Getenv:    func(key string) string { return env[key] },
			Overrides: overrides,
		})
	}

	It("applies defaults", func() {
		cfg, err := load("", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(&configutils.Config{
			BaseBranch:     releaseutils.DefaultBaseBranch,
			TrackerPrefix:  "https://app.shortcut.com",
			NotesMode:      releaseutils.NotesModeChangelog,
			WindowStrategy: []string{releaseutils.WindowStrategyPublish, releaseutils.WindowStrategyCommit},
			Format:         slackutils.FormatBlocks,
			Greeting:       slackutils.DefaultGreeting,
		}))
	})

	It("reads the config file", func() {
		cfg, err := load("/etc/releasectl.yaml", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Owner).To(Equal("solo-io"))
		Expect(cfg.Repo).To(Equal("from-file"))
		Expect(cfg.BaseBranch).To(Equal("develop"))
		Expect(cfg.Format).To(Equal(slackutils.FormatMarkdown))
		Expect(cfg.DryRun).To(BeTrue())
		Expect(cfg.WindowStrategy).To(Equal([]string{"commit", "publish"}))
		Expect(cfg.SlackNotifications().RepoUrls).To(HaveKeyWithValue("app", "https://hooks.slack.com/app"))
	})

	It("expands the home directory", func() {
		home, err := homedir.Dir()
		Expect(err).NotTo(HaveOccurred())
		Expect(afero.WriteFile(fs, filepath.Join(home, ".releasectl.yaml"), []byte("repo: home\n"), 0644)).To(Succeed())

		cfg, err := load("~/.releasectl.yaml", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Repo).To(Equal("home"))
	})

	It("reads the github actions environment", func() {
		env["GITHUB_REPOSITORY"] = "solo-io/from-env"
		env["GITHUB_TOKEN"] = "token"
		env["GITHUB_SHA"] = "abc123"
		env["SLACK_WEBHOOK"] = "https://hooks.slack.com/default"

		cfg, err := load("/etc/releasectl.yaml", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Owner).To(Equal("solo-io"))
		Expect(cfg.Repo).To(Equal("from-env"))
		Expect(cfg.GithubToken).To(Equal("token"))
		Expect(cfg.TargetCommit).To(Equal("abc123"))
		Expect(cfg.SlackWebhook).To(Equal("https://hooks.slack.com/default"))
	})

	It("prefers action inputs over the environment", func() {
		env["GITHUB_TOKEN"] = "token"
		env["INPUT_GITHUB_TOKEN"] = "input-token"
		env["INPUT_DRY_RUN"] = "false"
		env["INPUT_WINDOW_STRATEGY"] = "publish"
		env["INPUT_SLACK_REPO_URLS"] = "app: https://hooks.slack.com/input"

		cfg, err := load("/etc/releasectl.yaml", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.GithubToken).To(Equal("input-token"))
		Expect(cfg.DryRun).To(BeFalse())
		Expect(cfg.WindowStrategy).To(Equal([]string{"publish"}))
		Expect(cfg.SlackRepoUrls).To(Equal(map[string]string{"app": "https://hooks.slack.com/input"}))
	})

	It("accepts the legacy target commit input", func() {
		env["GITHUB_SHA"] = "from-env"
		env["INPUT_TARGET_COMMIT_SHA"] = "from-legacy-input"

		cfg, err := load("/etc/releasectl.yaml", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.TargetCommit).To(Equal("from-legacy-input"))

		env["INPUT_TARGET_COMMIT"] = "from-input"
		cfg, err = load("/etc/releasectl.yaml", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.TargetCommit).To(Equal("from-input"))
	})

	It("prefers overrides over everything", func() {
		env["INPUT_REPO"] = "from-input"
		cfg, err := load("/etc/releasectl.yaml", map[string]interface{}{
			configutils.KeyRepo:   "from-flag",
			configutils.KeyDryRun: false,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Repo).To(Equal("from-flag"))
		Expect(cfg.DryRun).To(BeFalse())
	})

	It("fails for a missing config file", func() {
		_, err := load("/etc/missing.yaml", nil)
		Expect(err).To(errors.HaveInErrorChain(errors.NotFound))
	})

	It("fails for a config file that is not a mapping", func() {
		Expect(afero.WriteFile(fs, "/etc/list.yaml", []byte("- a\n- b\n"), 0644)).To(Succeed())
		_, err := load("/etc/list.yaml", nil)
		Expect(err).To(errors.HaveInErrorChain(errors.MalformedInput))
	})

	It("fails for a malformed repository", func() {
		env["GITHUB_REPOSITORY"] = "solo-io"
		_, err := load("", nil)
		Expect(err).To(errors.HaveInErrorChain(errors.MalformedInput))
	})
})
