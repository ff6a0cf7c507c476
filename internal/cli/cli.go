// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Diplo2by/riptree/internal/config"
	"github.com/Diplo2by/riptree/internal/gitfiles"
	"github.com/Diplo2by/riptree/internal/icons"
	"github.com/Diplo2by/riptree/internal/output"
	"github.com/Diplo2by/riptree/internal/services/clipboard"
	"github.com/Diplo2by/riptree/internal/tokenizer"
	"github.com/Diplo2by/riptree/internal/tree"
	"github.com/Diplo2by/riptree/internal/types"
	"github.com/Diplo2by/riptree/internal/utils"
)

const (
	noIconsFlagName        = "no-icons"
	listIconsFlagName      = "list-icons"
	formatFlagName         = "format"
	copyFlagName           = "copy"
	tokensFlagName         = "tokens"
	modelFlagName          = "model"
	configFlagName         = "config"
	themeFlagName          = "theme"
	directoryCountFlagName = "directory-count"
	verboseFlagName        = "verbose"
	versionFlagName        = "version"

	versionTemplate = "%s version: %s\n"
	defaultPath     = "."
	rootUse         = "riptree [directory]"
	rootShort       = "show git-tracked files as a tree with icons"
	rootLong        = `riptree prints the files tracked by git as a directory tree.
Entries are decorated with icons chosen by file name or extension, and a summary
of directory and file counts follows the tree. Ignored files never appear because
only tracked files are listed.`
	rootExample = `  # Show the tree with icons
  riptree

  # Show the tree without icons
  riptree --no-icons

  # List all available icons
  riptree --list-icons

  # Emit JSON for another repository
  riptree --format json ../other-repo`

	noIconsFlagDescription        = "disable file and folder icons"
	listIconsFlagDescription      = "list all available icons and exit"
	formatFlagDescription         = "output format (raw, json, xml)"
	copyFlagDescription           = "copy the output to the clipboard"
	tokensFlagDescription         = "report an estimated token count of the tree"
	modelFlagDescription          = "tokenizer model used with --tokens"
	configFlagDescription         = "configuration file (default .riptree.yaml in the working directory)"
	themeFlagDescription          = "YAML icon theme overriding the built-in icons"
	directoryCountFlagDescription = "how directories are counted in the summary (nodes, parents)"
	verboseFlagDescription        = "log diagnostic details to stderr"
	versionFlagDescription        = "display application version"

	invalidFormatMessage     = "invalid format value '%s'"
	errorLoadConfigFormat    = "load configuration: %w"
	errorLoadThemeFormat     = "load icon theme: %w"
	warningCopyFailed        = "unable to copy output to clipboard"
	warningTokenCountFailed  = "unable to count tokens"
	debugTrackedFilesMessage = "tracked files listed"
	debugSettingsMessage     = "settings resolved"
	debugTokenCountMessage   = "tokens counted"
)

// application carries the collaborators the commands use; tests replace them.
type application struct {
	logger           *zap.Logger
	level            zap.AtomicLevel
	stdout           io.Writer
	workingDirectory string
	homeDirectory    string
	newProvider      func(directory string) gitfiles.Provider
	newCounter       func(cfg tokenizer.Config) (tokenizer.Counter, string, error)
	copier           clipboard.Copier
}

func newApplication(logger *zap.Logger, level zap.AtomicLevel) *application {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &application{
		logger: logger,
		level:  level,
		stdout: os.Stdout,
		newProvider: func(directory string) gitfiles.Provider {
			return gitfiles.NewGitProvider(directory)
		},
		newCounter: tokenizer.NewCounter,
		copier:     clipboard.NewService(),
	}
}

// Execute runs the riptree application. level is raised to debug by --verbose.
func Execute(logger *zap.Logger, level zap.AtomicLevel) error {
	rootCommand := createRootCommand(newApplication(logger, level))
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.ExecuteContext(context.Background())
}

// treeOptions stores the raw flag values of the root command.
type treeOptions struct {
	noIcons        bool
	listIcons      bool
	copy           bool
	tokens         bool
	verbose        bool
	showVersion    bool
	format         string
	model          string
	configPath     string
	theme          string
	directoryCount string
}

// runSettings is the result of layering flags over configuration.
type runSettings struct {
	showIcons      bool
	format         string
	copy           bool
	tokens         bool
	model          string
	theme          string
	directoryCount tree.DirectoryCountMode
}

// createRootCommand builds the root Cobra command.
func createRootCommand(app *application) *cobra.Command {
	var options treeOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShort,
		Long:          rootLong,
		Example:       rootExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(app.stdout, versionTemplate, utils.ApplicationName, utils.GetApplicationVersion())
				return nil
			}
			directory := defaultPath
			if len(arguments) == 1 {
				directory = arguments[0]
			}
			return app.runTree(command, directory, options)
		},
	}

	flagSet := rootCommand.Flags()
	registerBooleanFlag(flagSet, &options.noIcons, noIconsFlagName, false, noIconsFlagDescription)
	registerBooleanFlag(flagSet, &options.listIcons, listIconsFlagName, false, listIconsFlagDescription)
	registerBooleanFlag(flagSet, &options.copy, copyFlagName, false, copyFlagDescription)
	registerBooleanFlag(flagSet, &options.tokens, tokensFlagName, false, tokensFlagDescription)
	registerBooleanFlag(flagSet, &options.verbose, verboseFlagName, false, verboseFlagDescription)
	registerBooleanFlag(flagSet, &options.showVersion, versionFlagName, false, versionFlagDescription)
	flagSet.StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	flagSet.StringVar(&options.model, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&options.theme, themeFlagName, "", themeFlagDescription)
	flagSet.StringVar(&options.directoryCount, directoryCountFlagName, string(tree.DirectoryCountNodes), directoryCountFlagDescription)

	rootCommand.AddCommand(createInitCommand(app))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

func (app *application) runTree(command *cobra.Command, directory string, options treeOptions) error {
	if options.verbose {
		app.level.SetLevel(zapcore.DebugLevel)
	}

	applicationConfig, configError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: app.workingDirectory,
		ExplicitFilePath: options.configPath,
		HomeDirectory:    app.homeDirectory,
	})
	if configError != nil {
		return fmt.Errorf(errorLoadConfigFormat, configError)
	}
	settings, settingsError := resolveSettings(command.Flags(), options, applicationConfig)
	if settingsError != nil {
		return settingsError
	}
	app.logger.Debug(debugSettingsMessage,
		zap.Bool("icons", settings.showIcons),
		zap.String("format", settings.format),
		zap.String("directory_count", string(settings.directoryCount)),
		zap.String("theme", settings.theme),
	)

	iconSet := icons.Default()
	if settings.theme != "" {
		theme, themeError := icons.LoadTheme(settings.theme)
		if themeError != nil {
			return fmt.Errorf(errorLoadThemeFormat, themeError)
		}
		iconSet = iconSet.WithTheme(theme)
	}

	if options.listIcons {
		return output.WriteIconListing(app.stdout, iconSet)
	}

	trackedFiles, providerError := app.newProvider(directory).TrackedFiles(command.Context())
	if providerError != nil {
		return providerError
	}
	app.logger.Debug(debugTrackedFilesMessage, zap.String("directory", directory), zap.Int("count", len(trackedFiles)))

	root := tree.Build(trackedFiles)
	document := output.Document{
		Root:    root,
		Options: tree.RenderOptions{Icons: iconSet, ShowIcons: settings.showIcons},
		Summary: tree.Summarize(trackedFiles, root, settings.directoryCount),
	}
	if settings.tokens {
		app.countTokens(&document, settings.model)
	}

	rendered, renderError := output.Render(settings.format, document)
	if renderError != nil {
		return renderError
	}
	if _, writeError := io.WriteString(app.stdout, rendered); writeError != nil {
		return writeError
	}

	if settings.copy {
		if copyError := app.copier.Copy(rendered); copyError != nil {
			app.logger.Warn(warningCopyFailed, zap.Error(copyError))
		}
	}
	return nil
}

// countTokens estimates the raw rendering's token count; failures are logged, not returned.
func (app *application) countTokens(document *output.Document, model string) {
	counter, resolvedModel, counterError := app.newCounter(tokenizer.Config{Model: model})
	if counterError != nil {
		app.logger.Warn(warningTokenCountFailed, zap.Error(counterError))
		return
	}
	result, countError := tokenizer.CountText(counter, output.RenderRaw(*document))
	if countError != nil {
		app.logger.Warn(warningTokenCountFailed, zap.Error(countError))
		return
	}
	if !result.Counted {
		return
	}
	document.Tokens = result.Tokens
	document.Model = resolvedModel
	app.logger.Debug(debugTokenCountMessage, zap.Int("tokens", result.Tokens), zap.String("model", resolvedModel))
}

// resolveSettings applies configuration values unless the matching flag was set explicitly.
func resolveSettings(flagSet *pflag.FlagSet, options treeOptions, applicationConfig config.ApplicationConfiguration) (runSettings, error) {
	settings := runSettings{
		showIcons: !options.noIcons,
		format:    options.format,
		copy:      options.copy,
		tokens:    options.tokens,
		model:     options.model,
		theme:     options.theme,
	}
	directoryCount := options.directoryCount

	if !flagSet.Changed(noIconsFlagName) {
		settings.showIcons = config.BoolOrDefault(applicationConfig.Icons, settings.showIcons)
	}
	if !flagSet.Changed(formatFlagName) && applicationConfig.Format != "" {
		settings.format = applicationConfig.Format
	}
	if !flagSet.Changed(copyFlagName) {
		settings.copy = config.BoolOrDefault(applicationConfig.Copy, settings.copy)
	}
	if !flagSet.Changed(tokensFlagName) {
		settings.tokens = config.BoolOrDefault(applicationConfig.Tokens.Enabled, settings.tokens)
	}
	if !flagSet.Changed(modelFlagName) && applicationConfig.Tokens.Model != "" {
		settings.model = applicationConfig.Tokens.Model
	}
	if !flagSet.Changed(themeFlagName) && applicationConfig.Theme != "" {
		settings.theme = applicationConfig.Theme
	}
	if !flagSet.Changed(directoryCountFlagName) && applicationConfig.DirectoryCount != "" {
		directoryCount = applicationConfig.DirectoryCount
	}

	settings.format = output.NormalizeFormat(settings.format)
	if !output.IsSupportedFormat(settings.format) {
		return runSettings{}, fmt.Errorf(invalidFormatMessage, settings.format)
	}
	mode, modeError := tree.ParseDirectoryCountMode(directoryCount)
	if modeError != nil {
		return runSettings{}, modeError
	}
	settings.directoryCount = mode
	return settings, nil
}
