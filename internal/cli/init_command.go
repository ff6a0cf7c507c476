package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diplo2by/riptree/internal/config"
)

const (
	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write the default riptree configuration.
Without flags the file is created as .riptree.yaml in the working directory.
Use --global to write ~/.riptree/config.yaml instead.`
	globalFlagName        = "global"
	forceFlagName         = "force"
	globalFlagDescription = "write the global configuration under the home directory"
	forceFlagDescription  = "overwrite an existing configuration file"
	initSuccessFormat     = "Configuration written to %s\n"
)

// createInitCommand returns the init subcommand.
func createInitCommand(app *application) *cobra.Command {
	var writeGlobal bool
	var overwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			path, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            overwrite,
				WorkingDirectory: app.workingDirectory,
				HomeDirectory:    app.homeDirectory,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(app.stdout, initSuccessFormat, path)
			return nil
		},
	}

	registerBooleanFlag(initCommand.Flags(), &writeGlobal, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &overwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}
