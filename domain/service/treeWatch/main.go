package treeWatch

import (
	"context"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/plugsmith/srclist/domain/repository/config"
	"github.com/plugsmith/srclist/domain/service/folderDiscover"
	"github.com/rotisserie/eris"
	"os"
	"path/filepath"
	"time"
)

type TreeWatchService struct {
	folderDiscoverService *folderDiscover.FolderDiscoverService
}

func NewTreeWatchService(folderDiscoverService *folderDiscover.FolderDiscoverService) *TreeWatchService {
	return &TreeWatchService{
		folderDiscoverService: folderDiscoverService,
	}
}

// Watch runs onChange whenever the scanned directory tree changes, until ctx
// is cancelled. Events are coalesced: onChange fires once per quiet period of
// the given debounce length, however many events arrived. Events for the
// generated declaration files are dropped so a regeneration does not
// retrigger the watcher.
func (s *TreeWatchService) Watch(ctx context.Context, rootDir string, cfg *config.Config, debounce time.Duration, onChange func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return eris.Wrap(err, "failed to create filesystem watcher")
	}
	defer watcher.Close()

	if err := s.addRoots(watcher, rootDir, cfg); err != nil {
		return err
	}

	skip := outputPaths(rootDir, cfg)

	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	var dirty bool
	var lastEvent time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if skip[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("tree changed", "path", event.Name, "op", event.Op.String())

			// New directories have to be registered before anything inside
			// them can be seen.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						log.Error("failed to watch new directory", "path", event.Name, "err", err)
					}
				}
			}

			dirty = true
			lastEvent = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "err", err)

		case <-ticker.C:
			if dirty && time.Since(lastEvent) >= debounce {
				dirty = false
				if err := onChange(); err != nil {
					return err
				}
			}
		}
	}
}

// addRoots registers the project root, the modules directory and every
// discovered folder, including nested subdirectories. The root and modules
// directory are watched so that folders created later start contributing.
func (s *TreeWatchService) addRoots(watcher *fsnotify.Watcher, rootDir string, cfg *config.Config) error {
	if err := watcher.Add(rootDir); err != nil {
		return eris.Wrapf(err, "failed to watch %s", rootDir)
	}

	modulesDir := filepath.Join(rootDir, cfg.ModulesDir)
	if info, err := os.Stat(modulesDir); err == nil && info.IsDir() {
		if err := watcher.Add(modulesDir); err != nil {
			return eris.Wrapf(err, "failed to watch %s", cfg.ModulesDir)
		}
	}

	folders, err := s.folderDiscoverService.SourceFolders(rootDir, cfg)
	if err != nil {
		return err
	}
	folders = append(folders, s.folderDiscoverService.TestFolders(rootDir, cfg)...)

	for _, folder := range folders {
		if err := addTree(watcher, filepath.Join(rootDir, folder)); err != nil {
			return eris.Wrapf(err, "failed to watch %s", folder)
		}
	}
	return nil
}

// addTree registers dir and every directory below it.
func addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}

// outputPaths keys the declaration file paths and their parent directories
// for quick lookup during event filtering.
func outputPaths(rootDir string, cfg *config.Config) map[string]bool {
	skip := make(map[string]bool)
	for _, out := range []string{cfg.Output.Sources, cfg.Output.Tests} {
		p := filepath.Clean(filepath.Join(rootDir, out))
		skip[p] = true
		skip[filepath.Dir(p)] = true
	}
	return skip
}
