package datapacks

import (
	"embed"
	"fmt"

	"github.com/arthur-debert/datapacks/internal/version"
	"github.com/arthur-debert/datapacks/pkg/cobrax/topics"
	"github.com/arthur-debert/datapacks/pkg/config"
	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/logging"
	"github.com/arthur-debert/datapacks/pkg/output"
	"github.com/arthur-debert/datapacks/pkg/packages"
	"github.com/arthur-debert/datapacks/pkg/resolver"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
	userDir    string
	gameDir    string
	pkg        string
	noColor    bool
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "datapacks",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.userDir, "user-dir", "", MsgFlagUserDir)
	flags.StringVar(&opts.gameDir, "game-dir", "", MsgFlagGameDir)
	flags.StringVarP(&opts.pkg, "package", "p", "", MsgFlagPackage)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newSearchPathCmd(opts))
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newWritePathCmd(opts))
	rootCmd.AddCommand(newRelativizeCmd(opts))
	rootCmd.AddCommand(newSavegameCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newCompletionCmd())

	helpTopics, err := topics.Load(topicsFS, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	} else {
		helpTopics.Install(rootCmd)
	}

	return rootCmd
}

// loadConfig reads the configuration with the command line flags applied
// on top.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if o.userDir != "" {
		overrides["data.user_dir"] = o.userDir
	}
	if o.gameDir != "" {
		overrides["data.game_dir"] = o.gameDir
	}
	if o.pkg != "" {
		overrides["packages.active"] = o.pkg
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	// A configured verbosity only ever raises the flag value.
	if cfg.Log.Verbosity > o.verbosity {
		logging.SetupLogger(cfg.Log.Verbosity)
	}
	return cfg, nil
}

// newResolver builds a resolver from the merged configuration. An unknown
// package given with --package is an error; one that only comes from the
// configuration is logged and ignored.
func (o *globalOptions) newResolver() (*resolver.Resolver, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	roots, err := cfg.Roots()
	if err != nil {
		return nil, fmt.Errorf(MsgErrRoots, err)
	}

	log.Debug().
		Str("user_data", roots.UserData).
		Str("game_data", roots.GameData).
		Str("package", cfg.Packages.Active).
		Msg("Using data roots")

	r, err := resolver.New(resolver.Options{
		Roots:           roots,
		RegistryOptions: []packages.Option{packages.WithDescriptors(cfg.Packages.Descriptors)},
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitResolver, err)
	}

	if active := cfg.Packages.Active; active != "" {
		if err := r.SetActivePackage(active); err != nil {
			if o.pkg != "" || !errors.IsErrorCode(err, errors.ErrPackageNotFound) {
				return nil, err
			}
			log.Warn().Err(err).Str("package", active).Msg(MsgWarnConfigActive)
		}
	}
	return r, nil
}

// renderer creates the output renderer selected by --format and
// --no-color for cmd's output stream.
func (o *globalOptions) renderer(cmd *cobra.Command) (output.Renderer, error) {
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	if o.noColor && (format == output.FormatAuto || format == output.FormatTerminal) {
		format = output.FormatText
	}
	return output.NewRenderer(format, cmd.OutOrStdout())
}
