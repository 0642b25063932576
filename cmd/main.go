package cmd

import (
	"github.com/plugsmith/srclist/cmd/checkCommand"
	"github.com/plugsmith/srclist/cmd/initCommand"
	"github.com/plugsmith/srclist/cmd/regenCommand"
	"github.com/plugsmith/srclist/cmd/versionCommand"
	"github.com/plugsmith/srclist/cmd/watchCommand"
	"github.com/plugsmith/srclist/domain/service/configFindService"
	"github.com/plugsmith/srclist/domain/service/folderDiscover"
	"github.com/plugsmith/srclist/domain/service/listCheck"
	"github.com/plugsmith/srclist/domain/service/listEmit"
	"github.com/plugsmith/srclist/domain/service/listRegen"
	"github.com/plugsmith/srclist/domain/service/sourceScan"
	"github.com/plugsmith/srclist/domain/service/treeWatch"
	"github.com/plugsmith/srclist/infrastructure/logging"
	configRepo "github.com/plugsmith/srclist/infrastructure/repository/config"
	fileRepo "github.com/plugsmith/srclist/infrastructure/repository/file"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	var verboseFlag bool

	cmd := &cobra.Command{
		Use:   "srclist",
		Short: "Keep CMake source lists in sync with the project tree",
		Long: `Srclist scans a JUCE plugin project for source and test files and keeps
the generated CMake declaration files in sync with what is on disk, so the
build never has to enumerate files by hand.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(verboseFlag)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	configFindSrv := configFindService.NewConfigFindService(fileRepository, configRepository)
	folderDiscoverSrv := folderDiscover.NewFolderDiscoverService(fileRepository)
	sourceScanSrv := sourceScan.NewSourceScanService()
	listEmitSrv := listEmit.NewListEmitService(fileRepository)
	listRegenSrv := listRegen.NewListRegenService(folderDiscoverSrv, sourceScanSrv, listEmitSrv)
	listCheckSrv := listCheck.NewListCheckService(listRegenSrv, fileRepository)
	treeWatchSrv := treeWatch.NewTreeWatchService(folderDiscoverSrv)

	cmd.AddCommand(initCommand.NewInitCommand(configRepository, fileRepository).CobraCommand)
	cmd.AddCommand(regenCommand.NewRegenCommand(configFindSrv, listRegenSrv).CobraCommand)
	cmd.AddCommand(checkCommand.NewCheckCommand(configFindSrv, listCheckSrv).CobraCommand)
	cmd.AddCommand(watchCommand.NewWatchCommand(configFindSrv, listRegenSrv, treeWatchSrv).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}
