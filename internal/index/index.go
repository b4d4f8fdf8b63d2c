// Package index fetches, caches, and parses the release index documents for
// the zig and zls tool families.
package index

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/coastline-tools/zigup/internal/messages"
)

// Sentinel keys inside an index document that point at rolling builds rather
// than describing a tagged release.
const (
	masterKey = "master"
	latestKey = "latest"
)

// Artifact describes one downloadable archive for a release on one platform.
type Artifact struct {
	Tarball string
	Shasum  string
	Size    int64
}

// UnmarshalJSON accepts the published artifact object, where size is a
// decimal string.
func (a *Artifact) UnmarshalJSON(data []byte) error {
	var aux struct {
		Tarball string `json:"tarball"`
		Shasum  string `json:"shasum"`
		Size    string `json:"size"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.Tarball = aux.Tarball
	a.Shasum = aux.Shasum
	if aux.Size != "" {
		size, err := strconv.ParseInt(aux.Size, 10, 64)
		if err == nil {
			a.Size = size
		}
	}
	return nil
}

// Release is one entry of an index document: scalar metadata plus
// per-platform artifacts keyed by arch-os pairs.
type Release struct {
	Version   string
	Date      string
	Artifacts map[string]Artifact
}

// UnmarshalJSON splits an entry's keys into metadata strings and artifact
// objects. Unknown scalar keys are ignored.
func (r *Release) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Artifacts = make(map[string]Artifact)
	for key, value := range raw {
		if len(value) > 0 && value[0] == '{' {
			var artifact Artifact
			if err := json.Unmarshal(value, &artifact); err != nil {
				return err
			}
			r.Artifacts[key] = artifact
			continue
		}
		switch key {
		case "version":
			if err := json.Unmarshal(value, &r.Version); err != nil {
				return err
			}
		case "date":
			if err := json.Unmarshal(value, &r.Date); err != nil {
				return err
			}
		}
	}
	return nil
}

// Artifact returns the artifact published for the given platform pair.
func (r Release) Artifact(platform string) (Artifact, bool) {
	artifact, ok := r.Artifacts[platform]
	return artifact, ok
}

// Index is a parsed release index document. It is immutable once loaded.
type Index struct {
	releases map[string]Release
}

// Parse decodes an index document.
func Parse(data []byte) (*Index, error) {
	var releases map[string]Release
	if err := json.Unmarshal(data, &releases); err != nil {
		return nil, err
	}
	return &Index{releases: releases}, nil
}

// MasterVersion returns the concrete version string of the current rolling
// build.
func (ix *Index) MasterVersion() (string, error) {
	entry, ok := ix.releases[masterKey]
	if !ok {
		return "", fmt.Errorf(messages.IndexMissingMaster)
	}
	if entry.Version == "" {
		return "", fmt.Errorf(messages.IndexEntryMissingVersionFmt, masterKey)
	}
	return entry.Version, nil
}

// LatestVersion returns the version named by the index's latest pointer,
// falling back to the master entry when the document has no latest key.
func (ix *Index) LatestVersion() (string, error) {
	if entry, ok := ix.releases[latestKey]; ok {
		if entry.Version != "" {
			return entry.Version, nil
		}
		return "", fmt.Errorf(messages.IndexEntryMissingVersionFmt, latestKey)
	}
	if _, ok := ix.releases[masterKey]; ok {
		return ix.MasterVersion()
	}
	return "", fmt.Errorf(messages.IndexMissingLatest)
}

// Lookup returns the fully-described entry for a version. Sentinel entries
// are never returned by name.
func (ix *Index) Lookup(version string) (Release, bool) {
	if version == masterKey || version == latestKey {
		return Release{}, false
	}
	entry, ok := ix.releases[version]
	return entry, ok
}

// HasVersion reports whether version appears as a fully-described entry.
func (ix *Index) HasVersion(version string) bool {
	_, ok := ix.Lookup(version)
	return ok
}
