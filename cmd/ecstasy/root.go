package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chubbymaggie/ecstasy/internal/version"
	"github.com/chubbymaggie/ecstasy/pkg/config"
	"github.com/chubbymaggie/ecstasy/pkg/ecstasy"
	"github.com/chubbymaggie/ecstasy/pkg/errors"
	"github.com/chubbymaggie/ecstasy/pkg/logging"
	"github.com/chubbymaggie/ecstasy/pkg/palette"
	"github.com/chubbymaggie/ecstasy/pkg/style"
)

var (
	verbosity  int
	configFile string
	escapeFlag string
	sepFlag    string
	strictFlag bool
	noColor    bool

	rootCmd = &cobra.Command{
		Use:   "ecstasy [flags] TEMPLATE [ARG...]",
		Short: "A command-line string beautifier",
		Long: `ecstasy renders strings with inline style tags into terminal
output with ANSI formatting. Tags nest, literal characters can be
escaped, and positional arguments are substituted into consuming tags
in source order:

  ecstasy 'deployed ` + "`green:bold{`" + `${}}' v1.2.3

TEMPLATE may be - to read the template from stdin.`,
		Args: cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runRender,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Config file (default is ecstasy.toml or ecstasy.yaml under $XDG_CONFIG_HOME/ecstasy)")

	rootCmd.Flags().StringVar(&escapeFlag, "escape", "", "Escape character")
	rootCmd.Flags().StringVar(&sepFlag, "separator", "", "Attribute list separator")
	rootCmd.Flags().BoolVar(&strictFlag, "strict", false,
		"Treat unused positional arguments as an error")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false,
		"Emit plain text without formatting codes")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(genconfigCmd)
	rootCmd.AddCommand(docsCmd)

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
}

func runRender(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	template := args[0]
	if template == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading template from stdin: %w", err)
		}
		template = string(raw)
	}

	resolver := palette.Resolver(palette.Default())
	if noColor || !isTerminal(os.Stdout) {
		resolver = palette.Plain()
	}

	b, err := ecstasy.New(resolver, opts)
	if err != nil {
		return err
	}

	result, err := b.RenderDetailed(template, args[1:])
	if err != nil {
		return renderError(cmd, template, err)
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), style.Warning(w.Message))
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Output)
	return nil
}

// loadOptions layers the config file under the command-line flags
func loadOptions(cmd *cobra.Command) (*config.Options, error) {
	var opts *config.Options
	var err error
	if configFile != "" {
		opts, err = config.LoadFrom(configFile)
	} else {
		opts, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if escapeFlag != "" {
		runes := []rune(escapeFlag)
		if len(runes) != 1 {
			return nil, errors.Newf(errors.ErrConfigValid,
				"--escape must be a single character, got %q", escapeFlag)
		}
		opts.Escape = runes[0]
	}
	if sepFlag != "" {
		runes := []rune(sepFlag)
		if len(runes) != 1 {
			return nil, errors.Newf(errors.ErrConfigValid,
				"--separator must be a single character, got %q", sepFlag)
		}
		opts.Separator = runes[0]
	}
	if strictFlag {
		opts.StrictUnusedArguments = true
	}

	log.Debug().Stringer("options", opts).Msg("Options resolved")
	return opts, opts.Validate()
}

// renderError decorates pipeline errors with the offending position
func renderError(cmd *cobra.Command, template string, err error) error {
	if offset := errors.GetOffset(err); offset != errors.NoOffset {
		fmt.Fprintln(cmd.ErrOrStderr(), style.MutedStyle.Render(
			"at position "+errors.Position(template, offset)))
	}
	return err
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ecstasy version %s\n", version.Version)
		fmt.Fprintf(out, "  commit: %s\n", version.Commit)
		fmt.Fprintf(out, "  built:  %s\n", version.Date)
	},
}
