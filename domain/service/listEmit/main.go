package listEmit

import (
	"github.com/plugsmith/srclist/domain/model/cmake"
	"github.com/plugsmith/srclist/domain/repository/file"
	"github.com/rotisserie/eris"
	"path/filepath"
)

type ListEmitService struct {
	fileRepository file.Repository
}

func NewListEmitService(fileRepository file.Repository) *ListEmitService {
	return &ListEmitService{
		fileRepository: fileRepository,
	}
}

// Emit writes the rendered declaration to outputPath under rootDir,
// replacing any previous content in full. Emitting the same declaration
// twice produces byte-identical files.
func (s *ListEmitService) Emit(rootDir string, outputPath string, decl cmake.Declaration) error {
	target := filepath.Join(rootDir, outputPath)
	if err := s.fileRepository.Write(target, []byte(decl.Render())); err != nil {
		return eris.Wrapf(err, "failed to write %s", outputPath)
	}
	return nil
}
