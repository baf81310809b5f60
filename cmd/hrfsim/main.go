package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/hrfsim/internal/config"
	"github.com/san-kum/hrfsim/internal/export"
	"github.com/san-kum/hrfsim/internal/logging"
	"github.com/san-kum/hrfsim/internal/session"
	"github.com/san-kum/hrfsim/internal/tui"
)

var (
	configFile string
	preset     string
	title      string
	theme      string
	autoBounds bool
	logLevel   string
	logFile    string
	params     = make(map[session.Field]*float64, len(session.Specs))

	format     string
	plotWidth  int
	plotHeight int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hrfsim",
		Short:        "interactive haemodynamic response function explorer",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.StringVar(&title, "title", session.DefaultTitle, "initial title text")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(tui.ThemeNames(), ", ")+")")
	pf.BoolVar(&autoBounds, "auto-bounds", false, "refit axis ranges after every change")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "log file for interactive mode")
	for _, spec := range session.Specs {
		v := new(float64)
		params[spec.Field] = v
		pf.Float64Var(v, string(spec.Field), spec.Default,
			fmt.Sprintf("%s [%g, %g]", spec.Help, spec.Min, spec.Max))
	}

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "print the curve samples",
		Args:  cobra.NoArgs,
		RunE:  printCurve,
	}
	curveCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the curve in the terminal",
		Args:  cobra.NoArgs,
		RunE:  plotCurve,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "write the curve to .csv, .json, .svg or .png",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCurve,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(curveCmd, plotCmd, exportCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg.Params = p
	}
	if configFile != "" {
		if err := config.Merge(configFile, cfg); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	for _, spec := range session.Specs {
		if flags.Changed(string(spec.Field)) {
			if err := cfg.Params.Set(spec.Field, *params[spec.Field]); err != nil {
				return nil, err
			}
		}
	}
	if flags.Changed("title") {
		cfg.Params.Title = title
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("auto-bounds") {
		cfg.AutoBounds = autoBounds
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSession(cfg *config.Config, logger *slog.Logger) (*session.Session, error) {
	opts := append(cfg.SessionOptions(), session.WithLogger(logger))
	return session.New(opts...)
}

// batch loads the config and starts a session that logs to stderr.
func batch(cmd *cobra.Command) (*session.Session, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	s, err := newSession(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, logger, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.OpenFile(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	s, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("explorer started", "theme", cfg.Theme, "auto_bounds", cfg.AutoBounds)
	return tui.Run(s, tui.WithTheme(cfg.Theme), tui.WithLogger(logger))
}

func printCurve(cmd *cobra.Command, args []string) error {
	s, _, err := batch(cmd)
	if err != nil {
		return err
	}
	snap := export.Capture(s)
	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		return export.WriteCSV(out, snap)
	case "json":
		return export.WriteJSON(out, snap)
	}
	return fmt.Errorf("%w: %q", export.ErrUnknownFormat, format)
}

func plotCurve(cmd *cobra.Command, args []string) error {
	s, _, err := batch(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.Figure().RenderASCII(plotWidth, plotHeight))
	printSummary(out, s)
	return nil
}

func printSummary(w io.Writer, s *session.Session) {
	sum := s.Summary()
	fmt.Fprintf(w, "\nsamples: %d\n", sum.Samples)
	fmt.Fprintf(w, "peak:    %.4f at x=%.2f\n", sum.PeakY, sum.PeakX)
	fmt.Fprintf(w, "trough:  %.4f at x=%.2f\n", sum.TroughY, sum.TroughX)
	fmt.Fprintf(w, "fwhm:    %.2f\n", sum.FWHM)
}

func exportCurve(cmd *cobra.Command, args []string) error {
	s, logger, err := batch(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	if err := export.WriteFile(path, export.Capture(s)); err != nil {
		return err
	}
	logger.Info("curve exported", "path", path, "samples", s.Series().Len())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tDELAY\tUNDERSHOOT\tDISP\tU_DISP\tRATIO\tONSET\tLENGTH")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n",
			name, p.Title, p.Delay, p.Undershoot, p.Dispersion, p.UDispersion, p.Ratio, p.Onset, p.TimeLength)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "hrfsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
