/*
animath evaluates geometry scenes: point containment, closest points, ray
casts and volume estimates over shapes described in TOML or YAML.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/animath/engine/core"
	"github.com/spaghettifunk/animath/engine/math/simd"
	"github.com/spaghettifunk/animath/engine/scene"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "animath",
		Short: "animath - SIMD backed geometry queries",
		Long: `animath loads a scene of shapes and answers queries against it:
whether a point is inside each shape, the closest point on it, where a ray
first hits it and how large it is.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			return core.SetLogLevel(level)
		},
	}
	rootCmd.PersistentFlags().String("log-level", getEnvStr("ANIMATH_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "animath v%s (%s) built %s\n", version, commit, buildTime)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print the active SIMD backend",
		Run: func(cmd *cobra.Command, args []string) {
			info := simd.Info()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "backend:     %s\n", info.Implementation)
			fmt.Fprintf(out, "accelerated: %t\n", info.Accelerated)
			fmt.Fprintf(out, "features:    %s\n", strings.Join(info.Features, ", "))
			fmt.Fprintf(out, "platform:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	evalCmd := &cobra.Command{
		Use:   "eval <scene>",
		Short: "Evaluate a scene file once",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	addEvalFlags(evalCmd)
	rootCmd.AddCommand(evalCmd)

	watchCmd := &cobra.Command{
		Use:   "watch <scene>",
		Short: "Re-evaluate a scene file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	addEvalFlags(watchCmd)
	watchCmd.Flags().Int("history", getEnvInt("ANIMATH_HISTORY", 16), "Number of reports kept in memory")
	rootCmd.AddCommand(watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addEvalFlags(cmd *cobra.Command) {
	cmd.Flags().Int("workers", getEnvInt("ANIMATH_WORKERS", runtime.NumCPU()), "Number of evaluation workers")
	cmd.Flags().String("output", getEnvStr("ANIMATH_OUTPUT", outputText), "Report format: text, yaml")
}

type evalOptions struct {
	workers int
	output  string
}

func readEvalOptions(cmd *cobra.Command) (evalOptions, error) {
	workers, _ := cmd.Flags().GetInt("workers")
	output, _ := cmd.Flags().GetString("output")
	output = strings.ToLower(output)
	if output != outputText && output != outputYAML {
		return evalOptions{}, fmt.Errorf("unknown output format %q (want %s or %s)", output, outputText, outputYAML)
	}
	return evalOptions{workers: workers, output: output}, nil
}

func writeReport(w io.Writer, report *scene.Report, output string) error {
	if output == outputYAML {
		return report.WriteYAML(w)
	}
	return report.WriteText(w)
}

func runEval(cmd *cobra.Command, args []string) error {
	opts, err := readEvalOptions(cmd)
	if err != nil {
		return err
	}

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}

	evaluator, err := scene.NewEvaluator(opts.workers, opts.workers*2)
	if err != nil {
		return err
	}
	defer evaluator.Shutdown()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	report, err := evaluator.Evaluate(ctx, s)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), report, opts.output)
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := readEvalOptions(cmd)
	if err != nil {
		return err
	}
	history, _ := cmd.Flags().GetInt("history")

	evaluator, err := scene.NewEvaluator(opts.workers, opts.workers*2)
	if err != nil {
		return err
	}
	defer evaluator.Shutdown()

	watcher, err := scene.NewWatcher(args[0], evaluator, core.NewEventBus(), history)
	if err != nil {
		return err
	}
	defer watcher.Close()

	watcher.Bus().Register(core.EVENT_CODE_SCENE_LOADED, cmd, func(_ core.SystemEventCode, _, _ interface{}, data core.EventContext) bool {
		core.LogInfo("reloaded %s", data.Source)
		return false
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := watcher.Start(ctx); err != nil {
		return err
	}
	core.LogInfo("watching %s, press ctrl+c to stop", args[0])

	// Load errors are reported and the watch goes on; the file may be
	// mid-edit.
	reports, errs := watcher.Reports(), watcher.Errors()
	for reports != nil || errs != nil {
		select {
		case report, ok := <-reports:
			if !ok {
				reports = nil
				continue
			}
			if err := writeReport(cmd.OutOrStdout(), report, opts.output); err != nil {
				return err
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err)
		}
	}
	core.LogInfo("stopped, %d reports kept", len(watcher.History()))
	return nil
}

// getEnvStr returns environment variable or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns environment variable as int or default
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
