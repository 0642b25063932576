package listCheck

import (
	"github.com/plugsmith/srclist/domain/repository/config"
	"github.com/plugsmith/srclist/domain/repository/file"
	"github.com/plugsmith/srclist/domain/service/listRegen"
	"github.com/rotisserie/eris"
	"path/filepath"
)

// State classifies one declaration file against the current tree.
type State int

const (
	UpToDate State = iota
	Stale
	Missing
)

// Result is the check outcome for one declaration file. Want holds the
// content the current tree produces, Got the content found on disk (empty
// when the file is missing).
type Result struct {
	Output string
	State  State
	Want   string
	Got    string
}

type ListCheckService struct {
	listRegenService *listRegen.ListRegenService
	fileRepository   file.Repository
}

func NewListCheckService(
	listRegenService *listRegen.ListRegenService,
	fileRepository file.Repository,
) *ListCheckService {
	return &ListCheckService{
		listRegenService: listRegenService,
		fileRepository:   fileRepository,
	}
}

// Check renders both declarations in memory and compares them byte for byte
// with the files on disk. Nothing is written.
func (s *ListCheckService) Check(rootDir string, cfg *config.Config) ([]Result, error) {
	lists, err := s.listRegenService.Build(rootDir, cfg)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, list := range lists {
		want := list.Declaration.Render()
		target := filepath.Join(rootDir, list.Output)

		if !s.fileRepository.Exists(target) {
			results = append(results, Result{Output: list.Output, State: Missing, Want: want})
			continue
		}

		got, err := s.fileRepository.Read(target)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to read %s", list.Output)
		}

		state := UpToDate
		if string(got) != want {
			state = Stale
		}
		results = append(results, Result{Output: list.Output, State: state, Want: want, Got: string(got)})
	}

	return results, nil
}
