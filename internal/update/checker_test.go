package update

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func stubFetcher(t *testing.T, fn func(ctx context.Context) (*Release, bool, error)) {
	t.Helper()
	original := latestReleaseFetcher
	latestReleaseFetcher = fn
	t.Cleanup(func() { latestReleaseFetcher = original })
}

func TestCheckUsesCacheWhenFresh(t *testing.T) {
	t.Setenv(cacheDirEnv, t.TempDir())

	callCount := 0
	stubFetcher(t, func(ctx context.Context) (*Release, bool, error) {
		callCount++
		return &Release{Version: "1.2.3", AssetURL: "https://example.invalid/a", AssetName: "a"}, true, nil
	})

	result, err := Check(context.Background(), "1.0.0")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if result.LatestVersion != "1.2.3" {
		t.Fatalf("expected latest version 1.2.3, got %s", result.LatestVersion)
	}
	if !result.Outdated {
		t.Fatal("expected result to be marked outdated")
	}
	if result.Release == nil || result.Release.AssetName != "a" {
		t.Fatal("expected outdated result to carry the release")
	}
	if result.FromCache {
		t.Fatal("expected first call to be a live fetch")
	}
	if callCount != 1 {
		t.Fatalf("expected fetcher to be called once, got %d", callCount)
	}

	stubFetcher(t, func(ctx context.Context) (*Release, bool, error) {
		t.Fatal("fetcher should not be called when cache is fresh")
		return nil, false, nil
	})

	cachedResult, err := Check(context.Background(), "1.0.0")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !cachedResult.FromCache {
		t.Fatal("expected result to come from cache")
	}
	if cachedResult.LatestVersion != "1.2.3" {
		t.Fatalf("expected cached latest version 1.2.3, got %s", cachedResult.LatestVersion)
	}
	if cachedResult.Release == nil {
		t.Fatal("expected cached outdated result to carry the release")
	}
}

func TestCheckSkipsDevelopmentBuilds(t *testing.T) {
	t.Setenv(cacheDirEnv, t.TempDir())

	stubFetcher(t, func(ctx context.Context) (*Release, bool, error) {
		t.Fatal("fetcher should not be called for development builds")
		return nil, false, nil
	})

	for _, current := range []string{"dev", "DEV", ""} {
		res, err := Check(context.Background(), current)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", current, err)
		}
		if !res.Skipped {
			t.Fatalf("expected %q build to skip update check", current)
		}
	}
}

func TestCheckUpToDateCarriesNoRelease(t *testing.T) {
	t.Setenv(cacheDirEnv, t.TempDir())

	stubFetcher(t, func(ctx context.Context) (*Release, bool, error) {
		return &Release{Version: "1.0.0"}, true, nil
	})

	res, err := Check(context.Background(), "1.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outdated {
		t.Fatal("equal versions must not be outdated")
	}
	if res.Release != nil {
		t.Fatal("up-to-date result must not carry a release")
	}
}

func TestIsOutdatedComparison(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"1.0.0", "1.2.3", true},
		{"1.2.3", "1.0.0", false},
		{"1.0.0", "1.0.0", false},
		{"1.0.0", "1.0.1", true},
		{"2.0.0", "1.9.9", false},
		{"1.0.0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.current+" vs "+tt.latest, func(t *testing.T) {
			currentSemver, err := parseVersion(tt.current)
			if err != nil {
				t.Fatalf("parseVersion(%q) failed: %v", tt.current, err)
			}
			got := isOutdated(currentSemver, tt.latest)
			if got != tt.want {
				t.Errorf("isOutdated(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestCachePathHonorsOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(cacheDirEnv, dir)

	path, err := cachePath()
	if err != nil {
		t.Fatalf("cachePath() failed: %v", err)
	}
	if !strings.Contains(path, dir) {
		t.Fatalf("cachePath() = %q, expected it to contain %q", path, dir)
	}
}

func TestCheckPropagatesFetchError(t *testing.T) {
	t.Setenv(cacheDirEnv, t.TempDir())

	stubFetcher(t, func(ctx context.Context) (*Release, bool, error) {
		return nil, false, errors.New("network down")
	})

	_, err := Check(context.Background(), "1.0.0")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "network down") {
		t.Fatalf("expected error containing 'network down', got %v", err)
	}
}
