// Command vnnum reads integers aloud in Vietnamese.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FuandB/vn-numtext/internal/config"
	"github.com/FuandB/vn-numtext/internal/logger"
	"github.com/FuandB/vn-numtext/internal/reading"
)

// errReported marks a failure whose message was already printed.
var errReported = errors.New("vnnum: invalid input")

// app holds global flags and the dependencies built from them.
type app struct {
	configPath string
	verbose    bool
	output     string

	cfg *config.Config
	log *zap.Logger
	svc *reading.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "vnnum",
		Short: "Read integers as Vietnamese text",
		Long: `vnnum converts integers of any size to Vietnamese words.

Input may carry a leading sign and any thousands separators:
  vnnum read 1.234.567     # một triệu hai trăm ba mươi tư nghìn năm trăm sáu mươi bảy
  vnnum read -- -105       # âm một trăm lẻ năm
  vnnum ordinal 4          # thứ tư
  vnnum parse hai mươi mốt # 21

Run "vnnum read" without arguments for an interactive prompt, or pipe
numbers on stdin for one reading per line.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (or set "+config.PathEnv+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", formatText, "Output format: text, json or yaml")

	root.AddCommand(
		newReadCmd(a),
		newParseCmd(a),
		newOrdinalCmd(a),
		newServeCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger and reading service.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.output = strings.ToLower(a.output)
	switch a.output {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", a.output)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.verbose {
		cfg.Log.Level = "debug"
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	a.log = log.With(zap.String("cmd", cmd.Name()))
	a.svc = reading.NewService(cfg.Limits.MaxInputBytes)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
