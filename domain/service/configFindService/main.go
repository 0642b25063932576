//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package configFindService

import (
	"errors"
	"github.com/plugsmith/srclist/domain/repository/config"
	"github.com/rotisserie/eris"
	"path/filepath"
)

// ErrNotFound means no srclist.yml or srclist.yaml exists in the working
// directory or any parent.
var ErrNotFound = errors.New("srclist.yml or srclist.yaml not found")

type ConfigFindService struct {
	fileRepository   FileRepository
	configRepository config.Repository
}

type FileRepository interface {
	Getwd() (string, error)
	Exists(path string) bool
}

func NewConfigFindService(fileRepository FileRepository, configRepository config.Repository) *ConfigFindService {
	return &ConfigFindService{
		fileRepository:   fileRepository,
		configRepository: configRepository,
	}
}

// Project is a resolved project root together with its effective
// configuration.
type Project struct {
	RootDir    string
	ConfigPath string // empty when running on defaults without a config file
	Config     *config.Config
}

// FindConfig walks up from the working directory and returns the path of the
// first srclist.yml or srclist.yaml it finds.
func (s *ConfigFindService) FindConfig() (string, error) {
	currentDir, err := s.fileRepository.Getwd()
	if err != nil {
		return "", err
	}

	for {
		ymlPath := filepath.Join(currentDir, "srclist.yml")
		yamlPath := filepath.Join(currentDir, "srclist.yaml")

		if s.fileRepository.Exists(ymlPath) {
			return ymlPath, nil
		}
		if s.fileRepository.Exists(yamlPath) {
			return yamlPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}

// Locate resolves the project root and its effective configuration. A
// non-empty rootDir bypasses discovery and uses that directory directly.
// When no config file exists the working directory (or rootDir) becomes the
// root and every setting keeps its default, so the tool also works in
// projects that never ran init.
func (s *ConfigFindService) Locate(rootDir string) (Project, error) {
	if rootDir != "" {
		return s.locateAt(rootDir)
	}

	configPath, err := s.FindConfig()
	if errors.Is(err, ErrNotFound) {
		currentDir, wdErr := s.fileRepository.Getwd()
		if wdErr != nil {
			return Project{}, wdErr
		}
		return Project{RootDir: currentDir, Config: config.Default()}, nil
	}
	if err != nil {
		return Project{}, err
	}

	return s.load(filepath.Dir(configPath), configPath)
}

func (s *ConfigFindService) locateAt(rootDir string) (Project, error) {
	for _, name := range []string{"srclist.yml", "srclist.yaml"} {
		configPath := filepath.Join(rootDir, name)
		if s.fileRepository.Exists(configPath) {
			return s.load(rootDir, configPath)
		}
	}
	return Project{RootDir: rootDir, Config: config.Default()}, nil
}

func (s *ConfigFindService) load(rootDir string, configPath string) (Project, error) {
	cfg, err := s.configRepository.Read(configPath)
	if err != nil {
		return Project{}, eris.Wrapf(err, "failed to read %s", configPath)
	}
	cfg.ApplyDefaults()
	return Project{RootDir: rootDir, ConfigPath: configPath, Config: cfg}, nil
}
