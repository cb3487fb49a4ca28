package configblock

import (
	"fmt"
	"os"

	"github.com/arthur-debert/configblock/internal/version"
	"github.com/arthur-debert/configblock/pkg/build"
	"github.com/arthur-debert/configblock/pkg/config"
	"github.com/arthur-debert/configblock/pkg/errors"
	"github.com/arthur-debert/configblock/pkg/logging"
	"github.com/arthur-debert/configblock/pkg/style"
	"github.com/spf13/cobra"
)

// loadConfig reads the layered configuration; overrides come from flags the
// user actually set.
func loadConfig(flags *globalFlags, overrides map[string]interface{}) (*config.Config, error) {
	return config.Load(config.Options{
		Path:      flags.configPath,
		Overrides: overrides,
	})
}

// newConverter loads the configuration and builds a converter from it
func newConverter(flags *globalFlags, overrides map[string]interface{}) (*build.Converter, *config.Config, error) {
	cfg, err := loadConfig(flags, overrides)
	if err != nil {
		return nil, nil, err
	}
	opts, err := build.OptionsFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	conv, err := build.NewConverter(opts)
	if err != nil {
		return nil, nil, err
	}
	return conv, cfg, nil
}

// buildFlags holds the flags shared by render and build
type buildFlags struct {
	backend    string
	standalone bool
}

func (b *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&b.backend, "backend", "b", "", MsgFlagBackend)
	cmd.Flags().BoolVar(&b.standalone, "standalone", false, MsgFlagStandalone)
}

func (b *buildFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("backend") {
		overrides["build.backend"] = b.backend
	}
	if cmd.Flags().Changed("standalone") {
		overrides["build.standalone"] = b.standalone
	}
	return overrides
}

func newRenderCmd(flags *globalFlags) *cobra.Command {
	bf := &buildFlags{}
	cmd := &cobra.Command{
		Use:     "render FILE",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: "  configblock render docs/setup.md > setup.html\n  configblock render -b latex docs/setup.md",
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, _, err := newConverter(flags, bf.overrides(cmd))
			if err != nil {
				return err
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", args[0]).
					WithDetail("path", args[0])
			}

			logger := logging.GetLogger("cli")
			logger.Debug().
				Str("path", args[0]).
				Str("backend", conv.Backend()).
				Msg("Rendering document")
			return conv.Convert(source, cmd.OutOrStdout())
		},
	}
	bf.register(cmd)
	return cmd
}

func newBuildCmd(flags *globalFlags) *cobra.Command {
	bf := &buildFlags{}
	var out string
	cmd := &cobra.Command{
		Use:     "build DIR",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: "  configblock build docs\n  configblock build docs --out site -b html",
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := bf.overrides(cmd)
			if cmd.Flags().Changed("out") {
				overrides["build.output"] = out
			}

			conv, cfg, err := newConverter(flags, overrides)
			if err != nil {
				return err
			}

			result, err := conv.BuildTree(args[0], cfg.Build.Output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgBuiltFormat, len(result.Written), style.GetStyle("Path").Render(cfg.Build.Output))
			return nil
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)
	return cmd
}

func newFormatsCmd(flags *globalFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "formats",
		Short:   MsgFormatsShort,
		Long:    MsgFormatsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags, nil)
			if err != nil {
				return err
			}
			table, err := cfg.FormatTable()
			if err != nil {
				return err
			}
			return writeFormats(cmd.OutOrStdout(), table, output)
		},
	}
	cmd.Flags().StringVar(&output, "output", "table", MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return outputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	var stdout, force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Long:  MsgConfigInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags, nil)
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}

			if stdout {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			path := config.ProjectFiles[0]
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, path).
					WithDetail("path", path)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
					WithDetail("path", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&stdout, "stdout", false, MsgFlagStdout)
	initCmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	cmd.AddCommand(initCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
