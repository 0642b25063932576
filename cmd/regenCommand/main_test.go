package regenCommand

import (
	"github.com/plugsmith/srclist/domain/service/configFindService"
	"github.com/plugsmith/srclist/domain/service/folderDiscover"
	"github.com/plugsmith/srclist/domain/service/listEmit"
	"github.com/plugsmith/srclist/domain/service/listRegen"
	"github.com/plugsmith/srclist/domain/service/sourceScan"
	configRepo "github.com/plugsmith/srclist/infrastructure/repository/config"
	fileRepo "github.com/plugsmith/srclist/infrastructure/repository/file"
	"github.com/plugsmith/srclist/testUtil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"path/filepath"
	"testing"
)

func newRegenCommand() *RegenCommand {
	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	configFindSvc := configFindService.NewConfigFindService(fileRepository, configRepository)
	folderDiscoverSvc := folderDiscover.NewFolderDiscoverService(fileRepository)
	sourceScanSvc := sourceScan.NewSourceScanService()
	listEmitSvc := listEmit.NewListEmitService(fileRepository)
	listRegenSvc := listRegen.NewListRegenService(folderDiscoverSvc, sourceScanSvc, listEmitSvc)
	return NewRegenCommand(configFindSvc, listRegenSvc)
}

func runRegen(t *testing.T, args ...string) error {
	t.Helper()

	rootCmd := &cobra.Command{}
	rootCmd.AddCommand(newRegenCommand().CobraCommand)
	rootCmd.SetArgs(append([]string{"regen"}, args...))
	return rootCmd.Execute()
}

func TestRegenCommand(t *testing.T) {
	t.Run("regenerates the declaration files from the config location", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)

		// Setup Files
		space.WriteFile("srclist.yml", []byte("source-dir: SOURCE\n"))
		space.WriteFile("SOURCE/a.cpp", []byte(""))
		space.WriteFile("SOURCE/sub/b.h", []byte(""))
		space.WriteFile("SOURCE/notes.md", []byte(""))
		space.WriteFile("SUBMODULES/X/SOURCE/c.cpp", []byte(""))
		space.WriteFile("TESTS/engine_test.cpp", []byte(""))

		err := runRegen(t)
		assert.NoError(t, err)

		// Assert
		space.AssertFile("CMAKE/SOURCES.cmake", func(actual []byte) {
			expect := "set(SOURCES\n" +
				"    SOURCE/a.cpp\n" +
				"    SOURCE/sub/b.h\n" +
				"    SUBMODULES/X/SOURCE/c.cpp\n" +
				")"
			assert.Equal(t, expect, string(actual))
		})

		space.AssertFile("CMAKE/TESTS.cmake", func(actual []byte) {
			assert.Equal(t, "set(TEST_SOURCES\n    TESTS/engine_test.cpp\n)", string(actual))
		})
	})

	t.Run("runs with defaults when no config file exists", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		space.WriteFile("SOURCE/a.cpp", []byte(""))

		err := runRegen(t)
		assert.NoError(t, err)

		space.AssertFile("CMAKE/SOURCES.cmake", func(actual []byte) {
			assert.Equal(t, "set(SOURCES\n    SOURCE/a.cpp\n)", string(actual))
		})
	})

	t.Run("the root flag targets another project", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		space.WriteFile("proj/SOURCE/x.cpp", []byte(""))

		err := runRegen(t, "--root", filepath.Join(space.Dir, "proj"))
		assert.NoError(t, err)

		space.AssertFile("proj/CMAKE/SOURCES.cmake", func(actual []byte) {
			assert.Equal(t, "set(SOURCES\n    SOURCE/x.cpp\n)", string(actual))
		})
		space.AssertNotExistPath("CMAKE")
	})

	t.Run("respects a customized configuration end to end", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)

		// Setup Files
		cfg := `
source-dir: Src
suffixes:
    - .cc
output:
    sources: gen/S.cmake
variables:
    sources: MY_SOURCES
`
		space.WriteFile("srclist.yml", []byte(cfg))
		space.WriteFile("Src/dsp.cc", []byte(""))
		space.WriteFile("Src/dsp.cpp", []byte(""))

		err := runRegen(t)
		assert.NoError(t, err)

		// Assert
		space.AssertFile("gen/S.cmake", func(actual []byte) {
			assert.Equal(t, "set(MY_SOURCES\n    Src/dsp.cc\n)", string(actual))
		})
	})
}
