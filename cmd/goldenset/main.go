package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hopmetrics/goldenset-go/internal/audit"
	"github.com/hopmetrics/goldenset-go/internal/config"
	"github.com/hopmetrics/goldenset-go/internal/manifest"
	"github.com/hopmetrics/goldenset-go/internal/utils"
	"github.com/hopmetrics/goldenset-go/pkg/version"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goldenset",
	Short: "Validate golden-dataset manifests for motion-event accuracy testing",
	Long: `Goldenset validates the manifests that drive regression testing of the
jump detector: labeled reference videos, their regions of interest,
ground-truth landing/takeoff timestamps, and acceptance thresholds.

It checks the manifest against the schema, resolves media references, and
reports dataset statistics and missing media files.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.goldenset/config.yaml)")
	rootCmd.PersistentFlags().String("log-format", "pretty", "Log format (pretty or json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	auditCmd.Flags().Bool("fail-on-missing", false, "Exit non-zero when any media file is missing")
	auditCmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("audit.fail_on_missing", auditCmd.Flags().Lookup("fail-on-missing"))

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// setup loads config, initializes the logger, and loads the manifest given
// as the command's single argument.
func setup(path string) (*config.Config, *manifest.Manifest, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	}).WithComponent("goldenset")

	path = utils.ExpandPath(path)
	mlog := log.WithManifest(path)
	m, err := manifest.Load(path)
	if err != nil {
		var verr *manifest.ValidationError
		if errors.As(err, &verr) {
			mlog.Error().
				Str("field", verr.Path).
				Msg(verr.Message)
		} else {
			mlog.Error().Err(err).Msg("failed to load manifest")
		}
		return cfg, nil, err
	}
	return cfg, m, nil
}

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Validate a golden-dataset manifest against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, m, err := setup(args[0])
		if err != nil {
			return err
		}
		log.Info().
			Str("version", m.Version).
			Float64("fps", m.FPSAssumption).
			Int("cases", len(m.Cases)).
			Msg("manifest valid")
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <manifest>",
	Short: "Print aggregate dataset statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, m, err := setup(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(audit.DatasetStats(m), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit <manifest>",
	Short: "Check which referenced media files exist on disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, m, err := setup(args[0])
		if err != nil {
			return err
		}

		// Handle graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		go func() {
			<-sigCh
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		}()

		auditor := audit.New()
		var bar *progressbar.ProgressBar
		noProgress, _ := cmd.Flags().GetBool("no-progress")
		if cfg.Audit.Progress && !noProgress {
			bar = utils.NewProgressBar(len(m.Cases), utils.DescAuditing)
			defer bar.Finish()
		}
		auditor.Observe = func(c manifest.Case, found bool) {
			log.WithCase(c.ID).Debug().Bool("found", found).Msg("probed media")
			if bar != nil {
				_ = bar.Add(1)
			}
		}

		report := auditor.CheckURIsContext(ctx, m)
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Info().
			Int("found", report.Found).
			Int("missing", len(report.Missing)).
			Msg("media audit complete")
		for _, entry := range report.Missing {
			fmt.Fprintln(os.Stderr, "missing:", entry)
		}

		if viper.GetBool("audit.fail_on_missing") && len(report.Missing) > 0 {
			return fmt.Errorf("%d media file(s) missing", len(report.Missing))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
