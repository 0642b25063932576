package watchCommand

import (
	"github.com/charmbracelet/log"
	"github.com/plugsmith/srclist/cmd/regenCommand"
	"github.com/plugsmith/srclist/domain/service/configFindService"
	"github.com/plugsmith/srclist/domain/service/listRegen"
	"github.com/plugsmith/srclist/domain/service/treeWatch"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type WatchCommand struct {
	CobraCommand *cobra.Command
}

func NewWatchCommand(
	configFindSvc *configFindService.ConfigFindService,
	listRegenSvc *listRegen.ListRegenService,
	treeWatchSvc *treeWatch.TreeWatchService,
) *WatchCommand {
	var rootFlag string
	var debounceFlag time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the source lists whenever the tree changes",
		Long: `Run one regeneration, then keep watching the scanned folders and
regenerate on every change until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := configFindSvc.Locate(rootFlag)
			if err != nil {
				return err
			}

			regen := func() error {
				lists, err := listRegenSvc.Regen(project.RootDir, project.Config)
				if err != nil {
					return err
				}
				regenCommand.PrintLists(lists)
				return nil
			}

			if err := regen(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("watching for changes", "root", project.RootDir)
			return treeWatchSvc.Watch(ctx, project.RootDir, project.Config, debounceFlag, regen)
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", "", "project root to scan (skips config discovery)")
	cmd.Flags().DurationVar(&debounceFlag, "debounce", 500*time.Millisecond, "quiet period before regenerating")

	return &WatchCommand{
		CobraCommand: cmd,
	}
}
