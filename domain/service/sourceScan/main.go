package sourceScan

import (
	"github.com/charmbracelet/log"
	"github.com/denormal/go-gitignore"
	"github.com/plugsmith/srclist/util/path"
	"github.com/rotisserie/eris"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IgnoreFile is the optional ignore list honored during scans. It lives in
// the project root and uses gitignore pattern syntax.
const IgnoreFile = ".srclistignore"

type SourceScanService struct{}

func NewSourceScanService() *SourceScanService {
	return &SourceScanService{}
}

// Scan walks every folder (given relative to rootDir) and collects the
// root-relative forward-slash path of each file whose name ends with one of
// the suffixes. The suffix comparison is a plain string match against the
// file name, so ".h" matches "a.h" but not "a.hpp". The combined result is
// sorted in ascending byte order.
func (s *SourceScanService) Scan(rootDir string, folders []string, suffixes []string) ([]string, error) {
	ignore, err := loadIgnore(rootDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, folder := range folders {
		err := filepath.Walk(filepath.Join(rootDir, folder), func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			relPath, err := filepath.Rel(rootDir, p)
			if err != nil {
				return err
			}

			// Check if the path should be ignored
			if ignore != nil {
				if match := ignore.Relative(relPath, info.IsDir()); match != nil && match.Ignore() {
					if info.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
			}

			if info.IsDir() {
				return nil
			}
			if !hasAnySuffix(info.Name(), suffixes) {
				return nil
			}

			files = append(files, path.Slash(relPath))
			return nil
		})
		if err != nil {
			return nil, eris.Wrapf(err, "failed to scan %s", folder)
		}
		log.Debug("scanned folder", "folder", folder)
	}

	sort.Strings(files)
	return files, nil
}

// loadIgnore reads the ignore list from rootDir. A missing file is not an
// error; it just means nothing is ignored.
func loadIgnore(rootDir string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(rootDir, IgnoreFile)
	ignore, err := gitignore.NewFromFile(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "failed to read %s", IgnoreFile)
	}
	return ignore, nil
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
