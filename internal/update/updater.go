package update

import (
	"context"
	"sync"
	"time"

	"github.com/creativeprojects/go-selfupdate"

	"flashdesk/internal/logger"
)

// applyRelease replaces the running binary with the given release. Swapped
// out by tests.
var applyRelease = func(ctx context.Context, release *Release) error {
	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return err
	}
	return selfupdate.UpdateTo(ctx, release.AssetURL, release.AssetName, exe)
}

// Updater drives the check/stage/install cycle. Both auto flags default to
// on; the user preference clears them before any check runs.
type Updater struct {
	logger  logger.Logger
	current string

	mu                sync.Mutex
	autoDownload      bool
	autoInstallOnQuit bool
	staged            *Release
	checks            int
}

func NewUpdater(log logger.Logger, currentVersion string) *Updater {
	return &Updater{
		logger:            log,
		current:           currentVersion,
		autoDownload:      true,
		autoInstallOnQuit: true,
	}
}

func (u *Updater) SetAutoDownload(enabled bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.autoDownload = enabled
}

func (u *Updater) AutoDownload() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.autoDownload
}

func (u *Updater) SetAutoInstallOnQuit(enabled bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.autoInstallOnQuit = enabled
}

func (u *Updater) AutoInstallOnQuit() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.autoInstallOnQuit
}

// ApplyOptOut clears both auto flags when the user disabled updates. Must
// run before the first check.
func (u *Updater) ApplyOptOut(updatesEnabled bool) {
	if updatesEnabled {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.autoDownload = false
	u.autoInstallOnQuit = false
}

// CheckForUpdates runs one release check and, when auto-download is on,
// stages the newer release for installation at quit.
func (u *Updater) CheckForUpdates(ctx context.Context) (CheckResult, error) {
	u.mu.Lock()
	u.checks++
	u.mu.Unlock()

	res, err := Check(ctx, u.current)
	if err != nil {
		u.logger.Warning("Updater", "update check failed", map[string]interface{}{
			"error": err.Error(),
		})
		return res, err
	}

	if res.Skipped {
		u.logger.Debug("Updater", "update check skipped", map[string]interface{}{
			"reason": res.Reason,
		})
		return res, nil
	}

	u.logger.Info("Updater", "update check complete", map[string]interface{}{
		"current":    res.CurrentVersion,
		"latest":     res.LatestVersion,
		"outdated":   res.Outdated,
		"from_cache": res.FromCache,
	})

	if res.Outdated && res.Release != nil && u.AutoDownload() {
		u.mu.Lock()
		u.staged = res.Release
		u.mu.Unlock()
		u.logger.Info("Updater", "release staged for install on quit", map[string]interface{}{
			"version": res.Release.Version,
		})
	}

	return res, nil
}

// CheckCount returns how many checks have been triggered.
func (u *Updater) CheckCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.checks
}

// Staged returns the release waiting to be installed, if any.
func (u *Updater) Staged() *Release {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.staged
}

// Shutdown installs a staged release if auto-install-on-quit is still on.
func (u *Updater) Shutdown() {
	u.mu.Lock()
	staged := u.staged
	install := u.autoInstallOnQuit
	u.mu.Unlock()

	if staged == nil || !install {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := applyRelease(ctx, staged); err != nil {
		u.logger.Error("Updater", err, map[string]interface{}{
			"version": staged.Version,
		})
		return
	}
	u.logger.Info("Updater", "update installed", map[string]interface{}{
		"version": staged.Version,
	})
}
