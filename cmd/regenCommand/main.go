package regenCommand

import (
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/plugsmith/srclist/domain/service/configFindService"
	"github.com/plugsmith/srclist/domain/service/listRegen"
	"github.com/spf13/cobra"
	"strings"
)

type RegenCommand struct {
	CobraCommand *cobra.Command
}

func NewRegenCommand(
	configFindSvc *configFindService.ConfigFindService,
	listRegenSvc *listRegen.ListRegenService,
) *RegenCommand {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "regen",
		Short: "Regenerate the CMake source list files",
		Long: `Scan the project for source and test files and rewrite the CMake
declaration files consumed by the build. Run this whenever files are added,
moved or removed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := configFindSvc.Locate(rootFlag)
			if err != nil {
				return err
			}

			lists, err := listRegenSvc.Regen(project.RootDir, project.Config)
			if err != nil {
				return err
			}

			PrintLists(lists)
			return nil
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", "", "project root to scan (skips config discovery)")

	return &RegenCommand{
		CobraCommand: cmd,
	}
}

// PrintLists reports the scanned folders and the emitted file for each list.
func PrintLists(lists []listRegen.List) {
	for _, list := range lists {
		if len(list.Folders) > 0 {
			fmt.Printf("Scanning %s folders: %s\n", list.Label, strings.Join(list.Folders, ", "))
		} else {
			log.Warnf("No %s folders found", list.FolderName)
		}
		fmt.Printf("Generated %s with %d file(s)\n", list.Output, len(list.Declaration.Files))
	}
}
