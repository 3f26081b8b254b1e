package ciutils

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/solo-io/release-utils/changelogutils"
	"github.com/solo-io/release-utils/errors"
)

// InfoStore hands release info from the release step to a notify step running in another process.
type InfoStore struct {
	Fs   afero.Fs
	Path string
}

func NewInfoStore(fs afero.Fs, path string) *InfoStore {
	return &InfoStore{Fs: fs, Path: path}
}

func (s *InfoStore) Save(info *changelogutils.ReleaseInfo) error {
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return errors.MalformedInputError("could not encode release info: %v", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := s.Fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "could not create %s", dir)
		}
	}
	if err := afero.WriteFile(s.Fs, s.Path, b, 0644); err != nil {
		return errors.Wrapf(err, "could not write release info to %s", s.Path)
	}
	return nil
}

func (s *InfoStore) Load() (*changelogutils.ReleaseInfo, error) {
	b, err := afero.ReadFile(s.Fs, s.Path)
	if os.IsNotExist(err) {
		return nil, errors.NotFoundError(err, "no release info at %s", s.Path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not read release info from %s", s.Path)
	}
	var info changelogutils.ReleaseInfo
	if err := json.Unmarshal(b, &info); err != nil {
		return nil, errors.MalformedInputError("release info at %s is not valid: %v", s.Path, err)
	}
	if info.Version == "" {
		return nil, errors.MalformedInputError("release info at %s has no version", s.Path)
	}
	return &info, nil
}

// ReadInfoFromEnv reads the variables EnvFileWriter exports.
func ReadInfoFromEnv(getenv func(string) string) (*changelogutils.ReleaseInfo, error) {
	info := &changelogutils.ReleaseInfo{
		Version:    getenv(EnvVersion),
		ReleaseUrl: getenv(EnvReleaseUrl),
	}
	if info.Version == "" {
		return nil, errors.NotFoundError(nil, "%s is not set", EnvVersion)
	}
	var err error
	if info.Changelog, err = decodeList(getenv, EnvChangelog); err != nil {
		return nil, err
	}
	if info.TrackerLinks, err = decodeList(getenv, EnvTrackerLinks); err != nil {
		return nil, err
	}
	return info, nil
}

func decodeList(getenv func(string) string, name string) ([]string, error) {
	raw := getenv(name)
	if raw == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.MalformedInputError("%s must be a json array of strings: %v", name, err)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}
