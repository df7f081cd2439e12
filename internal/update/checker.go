// Package update owns release checking and self-update behavior. A check
// compares the running build against the latest published release; results
// are cached on disk for a day so repeated launches stay offline.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
)

const (
	repoSlug      = "flashdesk-io/flashdesk"
	cacheFileName = "latest.json"
	cacheDirName  = "flashdesk"
	cacheDirEnv   = "FLASHDESK_UPDATE_CACHE_DIR"
)

var cacheTTL = 24 * time.Hour

// latestReleaseFetcher is swapped out by tests.
var latestReleaseFetcher = fetchLatestRelease

// Release identifies a downloadable build for this platform.
type Release struct {
	Version   string `json:"version"`
	AssetURL  string `json:"asset_url"`
	AssetName string `json:"asset_name"`
}

// CheckResult describes the outcome of an update check.
type CheckResult struct {
	CurrentVersion string
	LatestVersion  string
	CheckedAt      time.Time
	Outdated       bool
	FromCache      bool
	Skipped        bool
	Reason         string
	Release        *Release
}

// Check determines whether a newer release is available for the running
// build. Development builds skip the check entirely.
func Check(ctx context.Context, current string) (CheckResult, error) {
	res := CheckResult{
		CurrentVersion: strings.TrimSpace(current),
	}

	if res.CurrentVersion == "" || strings.EqualFold(res.CurrentVersion, "dev") {
		res.Skipped = true
		res.Reason = "development-build"
		return res, nil
	}

	currentSemver, err := parseVersion(res.CurrentVersion)
	if err != nil {
		res.Skipped = true
		res.Reason = "invalid-current-version"
		return res, nil
	}

	if cached, err := readCache(); err == nil && time.Since(cached.CheckedAt) < cacheTTL {
		res.LatestVersion = cached.Release.Version
		res.CheckedAt = cached.CheckedAt
		res.FromCache = true
		res.Outdated = isOutdated(currentSemver, cached.Release.Version)
		if res.Outdated {
			release := cached.Release
			res.Release = &release
		}
		return res, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	release, found, err := latestReleaseFetcher(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch latest release: %w", err)
	}
	if !found {
		return res, nil
	}

	res.LatestVersion = release.Version
	res.CheckedAt = time.Now()
	res.Outdated = isOutdated(currentSemver, release.Version)
	if res.Outdated {
		res.Release = release
	}

	// Cache write failures are non-fatal; the next launch simply refetches.
	_ = writeCache(cachePayload{
		CheckedAt: res.CheckedAt,
		Release:   *release,
	})

	return res, nil
}

type cachePayload struct {
	CheckedAt time.Time `json:"checked_at"`
	Release   Release   `json:"release"`
}

func isOutdated(current *semver.Version, latest string) bool {
	latestSemver, err := parseVersion(latest)
	if err != nil {
		return false
	}
	return current.LessThan(latestSemver)
}

func parseVersion(v string) (*semver.Version, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, fmt.Errorf("empty version")
	}
	v = strings.TrimPrefix(v, "v")
	v = strings.TrimPrefix(v, "V")
	return semver.NewVersion(v)
}

func cachePath() (string, error) {
	if custom := os.Getenv(cacheDirEnv); custom != "" {
		if err := os.MkdirAll(custom, 0o755); err != nil {
			return "", err
		}
		return filepath.Join(custom, cacheFileName), nil
	}

	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			if err != nil {
				return "", err
			}
			return "", homeErr
		}
		dir = filepath.Join(home, ".cache")
	}

	dir = filepath.Join(dir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return filepath.Join(dir, cacheFileName), nil
}

func readCache() (cachePayload, error) {
	path, err := cachePath()
	if err != nil {
		return cachePayload{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cachePayload{}, err
	}

	var payload cachePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return cachePayload{}, err
	}
	if payload.Release.Version == "" {
		return cachePayload{}, fmt.Errorf("cache missing release version")
	}

	return payload, nil
}

func writeCache(payload cachePayload) error {
	path, err := cachePath()
	if err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func fetchLatestRelease(ctx context.Context) (*Release, bool, error) {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return nil, false, err
	}
	if !found || latest == nil {
		return nil, false, nil
	}
	return &Release{
		Version:   latest.Version(),
		AssetURL:  latest.AssetURL,
		AssetName: latest.AssetName,
	}, true, nil
}
