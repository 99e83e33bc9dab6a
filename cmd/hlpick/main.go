// Command hlpick resolves a pointer position on a scenario chart and
// optionally renders the chart with the selected point marked.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/highlight"
	"github.com/gogpu/highlight/internal/scenario"
)

// options holds the command line flags.
type options struct {
	pointer     string
	pngPath     string
	maxDistance float64
	debug       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	rootCmd := &cobra.Command{
		Use:   "hlpick SCENARIO",
		Short: "Find the data point selected by a pointer position",
		Long: `hlpick loads a chart scenario (YAML), resolves the pointer position
given with --at to the data point a user would select, and prints it.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}

	rootCmd.Flags().StringVar(&o.pointer, "at", "", "pointer position in pixels as x,y (required)")
	rootCmd.Flags().StringVarP(&o.pngPath, "png", "o", "", "render the chart with the selection to this PNG file")
	rootCmd.Flags().Float64Var(&o.maxDistance, "max-distance", 0, "override the maximum highlight distance in pixels")
	rootCmd.Flags().BoolVar(&o.debug, "debug", false, "log selection diagnostics to stderr")
	_ = rootCmd.MarkFlagRequired("at")
	return rootCmd
}

func run(cmd *cobra.Command, args []string, o options) error {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	highlight.SetLogger(logger)

	pointer, err := parsePoint(o.pointer)
	if err != nil {
		return err
	}

	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	c, err := s.Build()
	if err != nil {
		return err
	}
	logger.Debug("scenario loaded", "name", s.Name, "series", c.Data().SeriesCount())

	opts := s.Options()
	if o.maxDistance > 0 {
		opts = append(opts, highlight.WithMaxHighlightDistance(o.maxDistance))
	}
	h := highlight.NewHighlighter(c, opts...)
	hl, found := h.Locate(pointer.X, pointer.Y)

	if err := printResult(cmd, c, pointer, hl, found); err != nil {
		return err
	}

	if o.pngPath != "" {
		if err := renderPNG(o.pngPath, c, s.BarBottomFallback(), pointer, hl, found); err != nil {
			return fmt.Errorf("render %s: %w", o.pngPath, err)
		}
		logger.Info("chart rendered", "path", o.pngPath)
	}
	return nil
}

func printResult(cmd *cobra.Command, c highlight.Chart, pointer highlight.Point, hl highlight.Highlight, found bool) error {
	p := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()

	if !found {
		_, err := p.Fprintf(out, "no data point selected at (%.1f, %.1f)\n", pointer.X, pointer.Y)
		return err
	}

	label := "?"
	if s, _, ok := c.Data().SeriesAt(hl.DataSetIndex); ok {
		label = s.Label()
	}
	kind, _ := c.Data().KindAt(hl.DataIndex)
	_, err := p.Fprintf(out, "%s (%s, %s axis): x=%v y=%v at pixel (%.1f, %.1f), %.1f px from pointer\n",
		label, kind, hl.Axis, hl.X, hl.Y, hl.XPx, hl.YPx, pointer.Distance(hl.Pixel()))
	return err
}

// parsePoint parses "x,y".
func parsePoint(s string) (highlight.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return highlight.Point{}, fmt.Errorf("pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return highlight.Point{}, fmt.Errorf("pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return highlight.Point{}, fmt.Errorf("pointer y: %w", err)
	}
	return highlight.Pt(x, y), nil
}
