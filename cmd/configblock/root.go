package configblock

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/configblock/internal/version"
	"github.com/arthur-debert/configblock/pkg/cobrax/topics"
	"github.com/arthur-debert/configblock/pkg/logging"
	"github.com/arthur-debert/configblock/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// globalFlags are shared by every command through the root's persistent flags
type globalFlags struct {
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "configblock",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			if style.ColorDisabled() {
				style.DisableColor()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommandSpecified)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(flags))
	rootCmd.AddCommand(newBuildCmd(flags))
	rootCmd.AddCommand(newFormatsCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		opts := topics.Options{Renderer: topics.NewGlamourRenderer()}
		if style.ColorDisabled() || !stdoutIsTerminal() {
			opts.Renderer = topics.NewPlainGlamourRenderer()
		}
		if _, err := topics.InitializeWithOptions(rootCmd, topicFS, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}
