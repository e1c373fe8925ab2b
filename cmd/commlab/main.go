package main

import (
	"fmt"
	"io"
	"os"

	"CommLab/cmd/commlab/config"
	"CommLab/internel/logging"
	"CommLab/internel/utils"
	"CommLab/pkg/series"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    = config.Default()
	logger = zap.NewNop()

	configPath string
	logLevel   string
	outPath    string
	outFormat  string
)

var rootCmd = &cobra.Command{
	Use:           "commlab",
	Short:         "Signal, line-coding and multiplexing generators for a communications lab.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
		}
		override(cmd, "log-level", &cfg.Log.Level, logLevel)
		override(cmd, "out", &cfg.Output.Path, outPath)
		override(cmd, "format", &cfg.Output.Format, outFormat)

		l, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("config ready", zap.String("path", configPath), zap.String("command", cmd.Name()))
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	pf.StringVarP(&outPath, "out", "o", "", "write the series to this file instead of stdout")
	pf.StringVarP(&outFormat, "format", "f", "txt", "txt (x y lines), bin (float64) or pcm (int32)")
}

// override copies v into dst when the flag was given on the command line,
// so flags win over the config file.
func override[T any](cmd *cobra.Command, name string, dst *T, v T) {
	if cmd.Flags().Changed(name) {
		*dst = v
	}
}

func writeSeries(w io.Writer, s series.Series) error {
	path := cfg.Output.Path
	switch cfg.Output.Format {
	case "", "txt":
		if path == "" {
			return utils.FprintEach(w, s, utils.SampleLine)
		}
		return utils.WriteSeries(path, s)
	case "bin":
		if path == "" {
			return fmt.Errorf("format bin needs --out")
		}
		return utils.WriteBinary(path, s.Ys())
	case "pcm":
		if path == "" {
			return fmt.Errorf("format pcm needs --out")
		}
		return utils.WriteBinary(path, utils.Float64ToInt32(utils.Normalize(s.Ys())))
	}
	return fmt.Errorf("unknown output format %q", cfg.Output.Format)
}

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
