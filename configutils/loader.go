package configutils

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/ghodss/yaml"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/envutils"
	"github.com/solo-io/release-utils/errors"
	"github.com/solo-io/release-utils/githubutils"
	mapdecoder "github.com/solo-io/release-utils/mapstructureutils"
)

type LoadOptions struct {
	Fs afero.Fs
	// Path of an optional yaml config file, ~ is expanded
	Path   string
	Getenv func(string) string
	// Overrides win over every other source, typically the flags set on the command line
	Overrides map[string]interface{}
}

// Load merges the config file, the environment and the overrides, in increasing precedence.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	logger := contextutils.LoggerFrom(ctx)
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	fileValues, err := readFile(opts.Fs, opts.Path)
	if err != nil {
		return nil, err
	}
	envValues, err := readEnv(ctx, opts.Getenv)
	if err != nil {
		return nil, err
	}
	logger.Debugw("Loaded config sources",
		zap.String("file", opts.Path),
		zap.Int("fileKeys", len(fileValues)),
		zap.Int("envKeys", len(envValues)),
		zap.Int("overrides", len(opts.Overrides)))

	var cfg Config
	if err := mapdecoder.NormalizeMapDecode(mapdecoder.Merge(fileValues, envValues, opts.Overrides), &cfg); err != nil {
		return nil, errors.MalformedInputError("invalid configuration: %v", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func readFile(fs afero.Fs, path string) (map[string]interface{}, error) {
	if path == "" {
		return nil, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.MalformedInputError("invalid config path %s: %v", path, err)
	}
	raw, err := afero.ReadFile(fs, expanded)
	if os.IsNotExist(err) {
		return nil, errors.NotFoundError(err, "config file %s does not exist", expanded)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file %s", expanded)
	}
	jsn, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return nil, errors.MalformedInputError("config file %s is not valid yaml: %v", expanded, err)
	}
	values := map[string]interface{}{}
	decoder := json.NewDecoder(bytes.NewReader(jsn))
	decoder.UseNumber()
	if err := decoder.Decode(&values); err != nil {
		return nil, errors.MalformedInputError("config file %s must be a mapping: %v", expanded, err)
	}
	return values, nil
}

// readEnv reads the variables GitHub Actions provides, then the action inputs which take precedence.
func readEnv(ctx context.Context, getenv func(string) string) (map[string]interface{}, error) {
	values := map[string]interface{}{}
	set := func(key, value string) {
		if value != "" {
			values[key] = value
		}
	}

	if repository := envutils.Lookup(ctx, getenv, envutils.GithubRepositoryEnv); repository != "" {
		owner, repo, err := githubutils.ParseRepository(repository)
		if err != nil {
			return nil, err
		}
		set(KeyOwner, owner)
		set(KeyRepo, repo)
	}
	set(KeyGithubToken, envutils.Lookup(ctx, getenv, envutils.GithubTokenEnv))
	set(KeyGithubApiUrl, envutils.Lookup(ctx, getenv, envutils.GithubApiUrlEnv))
	set(KeyTargetCommit, envutils.Lookup(ctx, getenv, envutils.GithubShaEnv))
	set(KeyGitDir, envutils.Lookup(ctx, getenv, envutils.GithubWorkspaceEnv))
	set(KeySlackWebhook, envutils.Lookup(ctx, getenv, envutils.SlackWebhookEnv))

	// inputs of the original release action, overridden by their current names
	for alias, key := range InputAliases {
		set(key, envutils.GetInput(ctx, getenv, alias))
	}
	for _, key := range Keys {
		if key == KeySlackRepoUrls {
			continue
		}
		set(key, envutils.GetInput(ctx, getenv, key))
	}
	if raw := envutils.GetInput(ctx, getenv, KeySlackRepoUrls); raw != "" {
		urls := map[string]string{}
		if err := yaml.Unmarshal([]byte(raw), &urls); err != nil {
			return nil, errors.MalformedInputError("input %s must map repositories to webhook urls: %v",
				KeySlackRepoUrls, err)
		}
		values[KeySlackRepoUrls] = urls
	}
	return values, nil
}
