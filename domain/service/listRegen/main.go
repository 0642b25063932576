package listRegen

import (
	"github.com/plugsmith/srclist/domain/model/cmake"
	"github.com/plugsmith/srclist/domain/repository/config"
	"github.com/plugsmith/srclist/domain/service/folderDiscover"
	"github.com/plugsmith/srclist/domain/service/listEmit"
	"github.com/plugsmith/srclist/domain/service/sourceScan"
)

type ListRegenService struct {
	folderDiscoverService *folderDiscover.FolderDiscoverService
	sourceScanService     *sourceScan.SourceScanService
	listEmitService       *listEmit.ListEmitService
}

func NewListRegenService(
	folderDiscoverService *folderDiscover.FolderDiscoverService,
	sourceScanService *sourceScan.SourceScanService,
	listEmitService *listEmit.ListEmitService,
) *ListRegenService {
	return &ListRegenService{
		folderDiscoverService: folderDiscoverService,
		sourceScanService:     sourceScanService,
		listEmitService:       listEmitService,
	}
}

// List is one regenerated declaration together with the folders that fed it.
type List struct {
	Label       string   // "source" or "test"
	FolderName  string   // directory name this category scans for
	Folders     []string // scanned folders, relative to the project root
	Output      string   // declaration file path, relative to the project root
	Declaration cmake.Declaration
}

// Build computes both declarations from the directory tree without writing
// anything. The source list and the test list are derived independently, so
// a project with only tests still gets a complete test list.
func (s *ListRegenService) Build(rootDir string, cfg *config.Config) ([]List, error) {
	sourceFolders, err := s.folderDiscoverService.SourceFolders(rootDir, cfg)
	if err != nil {
		return nil, err
	}
	sourceFiles, err := s.sourceScanService.Scan(rootDir, sourceFolders, cfg.Suffixes)
	if err != nil {
		return nil, err
	}

	testFolders := s.folderDiscoverService.TestFolders(rootDir, cfg)
	testFiles, err := s.sourceScanService.Scan(rootDir, testFolders, cfg.Suffixes)
	if err != nil {
		return nil, err
	}

	return []List{
		{
			Label:       "source",
			FolderName:  cfg.SourceDir,
			Folders:     sourceFolders,
			Output:      cfg.Output.Sources,
			Declaration: cmake.Declaration{Variable: cfg.Variables.Sources, Files: sourceFiles},
		},
		{
			Label:       "test",
			FolderName:  cfg.TestDir,
			Folders:     testFolders,
			Output:      cfg.Output.Tests,
			Declaration: cmake.Declaration{Variable: cfg.Variables.Tests, Files: testFiles},
		},
	}, nil
}

// Regen rebuilds both declarations and writes them to their output paths.
func (s *ListRegenService) Regen(rootDir string, cfg *config.Config) ([]List, error) {
	lists, err := s.Build(rootDir, cfg)
	if err != nil {
		return nil, err
	}

	for _, list := range lists {
		if err := s.listEmitService.Emit(rootDir, list.Output, list.Declaration); err != nil {
			return nil, err
		}
	}

	return lists, nil
}
