package checkCommand

import (
	"fmt"
	"github.com/plugsmith/srclist/domain/service/configFindService"
	"github.com/plugsmith/srclist/domain/service/listCheck"
	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

type CheckCommand struct {
	CobraCommand *cobra.Command
}

func NewCheckCommand(
	configFindSvc *configFindService.ConfigFindService,
	listCheckSvc *listCheck.ListCheckService,
) *CheckCommand {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the CMake source list files are up to date",
		Long: `Rebuild both source lists in memory and compare them with the files on
disk. Nothing is written. Exits non-zero when a file is stale or missing,
which makes it usable as a CI gate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := configFindSvc.Locate(rootFlag)
			if err != nil {
				return err
			}

			results, err := listCheckSvc.Check(project.RootDir, project.Config)
			if err != nil {
				return err
			}

			outdated := 0
			for _, result := range results {
				switch result.State {
				case listCheck.Missing:
					outdated++
					fmt.Printf("%s is missing\n", result.Output)
				case listCheck.Stale:
					outdated++
					fmt.Printf("%s is out of date\n", result.Output)
					printDiff(result.Got, result.Want)
				}
			}

			if outdated > 0 {
				return eris.Errorf("%d file(s) need regeneration, run 'srclist regen'", outdated)
			}

			fmt.Println("Source lists are up to date")
			return nil
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", "", "project root to scan (skips config discovery)")

	return &CheckCommand{
		CobraCommand: cmd,
	}
}

func printDiff(oldContent, newContent string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldContent, newContent, false)
	fmt.Println(dmp.DiffPrettyText(diffs))
}
