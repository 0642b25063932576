package initCommand

import (
	"fmt"
	"github.com/plugsmith/srclist/domain/repository/config"
	"github.com/plugsmith/srclist/domain/repository/file"
	"github.com/spf13/cobra"
	"path/filepath"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository, fileRepository file.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a srclist.yml for the current directory",
		Long: `Write a srclist.yml describing the standard project layout into the current
directory. Edit it to rename folders, change suffixes or register modules
that ship tests. The other commands also run without one, using the same
defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := fileRepository.Getwd()
			if err != nil {
				return err
			}

			configPath := filepath.Join(currentDir, "srclist.yml")
			if fileRepository.Exists(configPath) {
				return fmt.Errorf("srclist.yml already exists in the current directory")
			}

			err = configRepository.Write(configPath, config.Default())
			if err != nil {
				return err
			}

			fmt.Println("Created srclist.yml in the current directory.")
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}
