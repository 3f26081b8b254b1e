package ciutils

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/sethvargo/go-githubactions"
	"go.uber.org/zap"

	"github.com/solo-io/release-utils/changelogutils"
	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/errors"
)

const (
	GithubOutputEnv = "GITHUB_OUTPUT"
	GithubEnvEnv    = "GITHUB_ENV"

	OutputVersion      = "version"
	OutputReleaseUrl   = "release_url"
	OutputChangelog    = "changelog"
	OutputTrackerLinks = "tracker_links"

	EnvVersion      = "VERSION"
	EnvReleaseUrl   = "RELEASE_URL"
	EnvChangelog    = "CHANGELOG"
	EnvTrackerLinks = "SHORTCUT_LINKS"
)

// OutputWriter publishes release info to later steps of a CI job.
type OutputWriter interface {
	Write(ctx context.Context, info *changelogutils.ReleaseInfo) error
}

type NoopWriter struct{}

func (NoopWriter) Write(context.Context, *changelogutils.ReleaseInfo) error {
	return nil
}

// GithubOutputWriter sets step outputs through the file GitHub Actions names in $GITHUB_OUTPUT.
type GithubOutputWriter struct {
	Getenv func(string) string
}

func (w *GithubOutputWriter) Write(ctx context.Context, info *changelogutils.ReleaseInfo) error {
	values, err := encodeInfo(info, OutputVersion, OutputReleaseUrl, OutputChangelog, OutputTrackerLinks)
	if err != nil {
		return err
	}
	return issueFileCommands(ctx, w.Getenv, GithubOutputEnv, values, (*githubactions.Action).SetOutput)
}

// EnvFileWriter exports the release info as environment variables of later steps through $GITHUB_ENV.
type EnvFileWriter struct {
	Getenv func(string) string
}

func (w *EnvFileWriter) Write(ctx context.Context, info *changelogutils.ReleaseInfo) error {
	values, err := encodeInfo(info, EnvVersion, EnvReleaseUrl, EnvChangelog, EnvTrackerLinks)
	if err != nil {
		return err
	}
	return issueFileCommands(ctx, w.Getenv, GithubEnvEnv, values, (*githubactions.Action).SetEnv)
}

type multiWriter []OutputWriter

func (m multiWriter) Write(ctx context.Context, info *changelogutils.ReleaseInfo) error {
	for _, w := range m {
		if err := w.Write(ctx, info); err != nil {
			return err
		}
	}
	return nil
}

// NewOutputWriter writes to every command file the runner provides, and nowhere outside of GitHub Actions.
func NewOutputWriter(getenv func(string) string) OutputWriter {
	var writers multiWriter
	if getenv(GithubOutputEnv) != "" {
		writers = append(writers, &GithubOutputWriter{Getenv: getenv})
	}
	if getenv(GithubEnvEnv) != "" {
		writers = append(writers, &EnvFileWriter{Getenv: getenv})
	}
	if len(writers) == 0 {
		return NoopWriter{}
	}
	return writers
}

type keyValue struct {
	key   string
	value string
}

func encodeInfo(info *changelogutils.ReleaseInfo, versionKey, urlKey, changelogKey, linksKey string) ([]keyValue, error) {
	changelog, err := encodeList(info.Changelog)
	if err != nil {
		return nil, err
	}
	links, err := encodeList(info.TrackerLinks)
	if err != nil {
		return nil, err
	}
	return []keyValue{
		{key: versionKey, value: info.Version},
		{key: urlKey, value: info.ReleaseUrl},
		{key: changelogKey, value: changelog},
		{key: linksKey, value: links},
	}, nil
}

// lists are always encoded as json arrays, never null
func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", errors.MalformedInputError("could not encode %v: %v", items, err)
	}
	return string(b), nil
}

// issueFileCommands appends every value to the command file named by fileEnv.
// The action falls back to printing workflow commands when the file cannot be
// written, so anything printed is reported as a failure instead.
func issueFileCommands(ctx context.Context, getenv func(string) string, fileEnv string, values []keyValue,
	set func(action *githubactions.Action, key, value string)) error {
	path := getenv(fileEnv)
	if path == "" {
		return errors.MalformedInputError("%s is not set", fileEnv)
	}
	var fallback bytes.Buffer
	action := githubactions.New(
		githubactions.WithGetenv(getenv),
		githubactions.WithWriter(&fallback),
	)
	for _, kv := range values {
		set(action, kv.key, kv.value)
		if fallback.Len() > 0 {
			return errors.Errorf("could not write %s to %s", kv.key, path)
		}
	}
	contextutils.LoggerFrom(ctx).Debugw("Wrote command file", zap.String("path", path), zap.Int("values", len(values)))
	return nil
}
