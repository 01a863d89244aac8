package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/DrSkyle/graphpad/pkg/config"
	"github.com/DrSkyle/graphpad/pkg/version"
)

var (
	cfgFile string
	v       = viper.New()

	readErr error
)

var rootCmd = &cobra.Command{
	Use:   "graphpad",
	Short: "Terminal node-graph editor",
	Long: `graphpad - a minimal node-graph editor for the terminal

Create. Connect. Relabel.`,
	Version:       version.Current,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEdit,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent Flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.graphpad.yaml)")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	pf.String("log-file", "", "Log file (default graphpad.log in the temp dir)")
	pf.String("otel-endpoint", "", "OTLP/HTTP endpoint; enables tracing")
	pf.String("highlight", "", "CEL expression highlighted at startup")

	bindFlags(v, pf)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd.OutOrStdout(), cmd)
	})

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindFlags maps persistent flags onto their config keys.
func bindFlags(v *viper.Viper, pf *pflag.FlagSet) {
	_ = v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = v.BindPFlag("log.file", pf.Lookup("log-file"))
	_ = v.BindPFlag("telemetry.endpoint", pf.Lookup("otel-endpoint"))
	_ = v.BindPFlag("highlight", pf.Lookup("highlight"))
}

func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.SetConfigFile(filepath.Join(home, ".graphpad.yaml"))
			v.SetConfigType("yaml")
		}
	}
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	readErr = v.ReadInConfig()

	// A missing default file is fine; a missing --config file is not.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && (errors.As(readErr, &notFound) || errors.Is(readErr, fs.ErrNotExist)) {
		readErr = nil
	}
}

// loadConfig resolves flags, env, config file and defaults into a
// validated Config.
func loadConfig() (config.Config, error) {
	if readErr != nil {
		return config.Config{}, fmt.Errorf("failed to read config %s: %w", v.ConfigFileUsed(), readErr)
	}
	return config.Load(v)
}

func renderHelp(w io.Writer, cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Fprintln(w, titleStyle.Render(strings.ToUpper(version.String())))
	fmt.Fprintln(w, "A minimal node-graph editor for the terminal.")

	fmt.Fprintln(w, titleStyle.Render("USAGE"))
	fmt.Fprintf(w, "  %s\n\n", cmd.UseLine())

	fmt.Fprintln(w, titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Root().Commands() {
		if c.IsAvailableCommand() {
			fmt.Fprintf(w, "  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render("EXAMPLES"))
	fmt.Fprintln(w, "  graphpad                                   # Open the editor")
	fmt.Fprintln(w, "  graphpad --highlight 'out_degree == 0'     # Start with sinks highlighted")
	fmt.Fprintln(w, "  GRAPHPAD_CANVAS_WIDTH=120 graphpad config  # Show effective settings")
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render("FLAGS"))
	printFlag := func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Fprintln(w, flagStyle.Render(output))
	}
	cmd.LocalFlags().VisitAll(printFlag)
	cmd.InheritedFlags().VisitAll(printFlag)
	fmt.Fprintln(w)
}
