package listCheck_test

import (
	"github.com/plugsmith/srclist/domain/repository/config"
	"github.com/plugsmith/srclist/domain/service/folderDiscover"
	"github.com/plugsmith/srclist/domain/service/listCheck"
	"github.com/plugsmith/srclist/domain/service/listEmit"
	"github.com/plugsmith/srclist/domain/service/listRegen"
	"github.com/plugsmith/srclist/domain/service/sourceScan"
	fileRepo "github.com/plugsmith/srclist/infrastructure/repository/file"
	"github.com/plugsmith/srclist/testUtil"
	"github.com/stretchr/testify/assert"
	"testing"
)

func newServices() (*listRegen.ListRegenService, *listCheck.ListCheckService) {
	fileRepository := fileRepo.NewFileRepository()
	folderDiscoverSvc := folderDiscover.NewFolderDiscoverService(fileRepository)
	sourceScanSvc := sourceScan.NewSourceScanService()
	listEmitSvc := listEmit.NewListEmitService(fileRepository)
	listRegenSvc := listRegen.NewListRegenService(folderDiscoverSvc, sourceScanSvc, listEmitSvc)
	listCheckSvc := listCheck.NewListCheckService(listRegenSvc, fileRepository)
	return listRegenSvc, listCheckSvc
}

func TestCheck(t *testing.T) {
	t.Run("reports missing before the first generation", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		space.WriteFile("SOURCE/a.cpp", []byte(""))

		_, checkSvc := newServices()

		results, err := checkSvc.Check(space.Dir, config.Default())

		assert.NoError(t, err)
		assert.Len(t, results, 2)
		assert.Equal(t, listCheck.Missing, results[0].State)
		assert.Equal(t, listCheck.Missing, results[1].State)
		assert.Contains(t, results[0].Want, "SOURCE/a.cpp")
	})

	t.Run("reports up to date right after a generation", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		space.WriteFile("SOURCE/a.cpp", []byte(""))
		space.WriteFile("TESTS/a_test.cpp", []byte(""))

		regenSvc, checkSvc := newServices()

		_, err := regenSvc.Regen(space.Dir, config.Default())
		assert.NoError(t, err)

		results, err := checkSvc.Check(space.Dir, config.Default())

		assert.NoError(t, err)
		for _, result := range results {
			assert.Equal(t, listCheck.UpToDate, result.State)
			assert.Equal(t, result.Want, result.Got)
		}
	})

	t.Run("reports stale when the tree changed afterwards", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		space.WriteFile("SOURCE/a.cpp", []byte(""))

		regenSvc, checkSvc := newServices()

		_, err := regenSvc.Regen(space.Dir, config.Default())
		assert.NoError(t, err)

		space.WriteFile("SOURCE/b.cpp", []byte(""))

		results, err := checkSvc.Check(space.Dir, config.Default())

		assert.NoError(t, err)
		assert.Equal(t, listCheck.Stale, results[0].State)
		assert.Contains(t, results[0].Want, "SOURCE/b.cpp")
		assert.NotContains(t, results[0].Got, "SOURCE/b.cpp")
		assert.Equal(t, listCheck.UpToDate, results[1].State)
	})

	t.Run("reports stale when a declaration file was edited by hand", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		space.WriteFile("SOURCE/a.cpp", []byte(""))

		regenSvc, checkSvc := newServices()

		_, err := regenSvc.Regen(space.Dir, config.Default())
		assert.NoError(t, err)

		space.WriteFile("CMAKE/SOURCES.cmake", []byte("set(SOURCES\n    SOURCE/a.cpp\n    extra.cpp\n)"))

		results, err := checkSvc.Check(space.Dir, config.Default())

		assert.NoError(t, err)
		assert.Equal(t, listCheck.Stale, results[0].State)
	})

	t.Run("checking writes nothing to disk", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		space.WriteFile("SOURCE/a.cpp", []byte(""))

		_, checkSvc := newServices()

		_, err := checkSvc.Check(space.Dir, config.Default())

		assert.NoError(t, err)
		space.AssertNotExistPath("CMAKE/SOURCES.cmake")
		space.AssertNotExistPath("CMAKE/TESTS.cmake")
	})
}
