package folderDiscover

import (
	"github.com/charmbracelet/log"
	"github.com/plugsmith/srclist/domain/repository/config"
	"github.com/plugsmith/srclist/domain/repository/file"
	"github.com/plugsmith/srclist/util/path"
	"github.com/rotisserie/eris"
	"path/filepath"
)

type FolderDiscoverService struct {
	fileRepository file.Repository
}

func NewFolderDiscoverService(fileRepository file.Repository) *FolderDiscoverService {
	return &FolderDiscoverService{
		fileRepository: fileRepository,
	}
}

// SourceFolders returns the folders contributing compilable sources, relative
// to rootDir: the primary source directory plus the source directory of every
// module that has one. A missing primary directory or module source directory
// is skipped silently; only a failing directory read is an error.
func (s *FolderDiscoverService) SourceFolders(rootDir string, cfg *config.Config) ([]string, error) {
	var folders []string

	if s.fileRepository.IsDir(filepath.Join(rootDir, cfg.SourceDir)) {
		folders = append(folders, cfg.SourceDir)
	}

	modulesDir := filepath.Join(rootDir, cfg.ModulesDir)
	if !s.fileRepository.IsDir(modulesDir) {
		return folders, nil
	}

	entries, err := s.fileRepository.ReadDir(modulesDir)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to list modules in %s", cfg.ModulesDir)
	}

	for _, entry := range entries {
		moduleDir := filepath.Join(cfg.ModulesDir, entry.Name())
		if !s.fileRepository.IsDir(filepath.Join(rootDir, moduleDir)) {
			continue
		}
		sourceDir := filepath.Join(moduleDir, cfg.SourceDir)
		if !s.fileRepository.IsDir(filepath.Join(rootDir, sourceDir)) {
			log.Debug("module has no source folder", "module", entry.Name())
			continue
		}
		folders = append(folders, path.Slash(sourceDir))
	}

	return folders, nil
}

// TestFolders returns the folders contributing test sources: the primary test
// directory plus the test directory of each module named in test-modules.
// Unlike source discovery this never enumerates the modules directory; only
// the designated modules ship tests.
func (s *FolderDiscoverService) TestFolders(rootDir string, cfg *config.Config) []string {
	var folders []string

	if s.fileRepository.IsDir(filepath.Join(rootDir, cfg.TestDir)) {
		folders = append(folders, cfg.TestDir)
	}

	for _, name := range cfg.TestModules {
		testDir := filepath.Join(cfg.ModulesDir, name, cfg.TestDir)
		if s.fileRepository.IsDir(filepath.Join(rootDir, testDir)) {
			folders = append(folders, path.Slash(testDir))
		}
	}

	return folders
}
