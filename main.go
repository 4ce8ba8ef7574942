package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"unit-circle.klederson.com/internal/app"
	"unit-circle.klederson.com/internal/config"
	"unit-circle.klederson.com/internal/logging"
	"unit-circle.klederson.com/internal/raster"
	"unit-circle.klederson.com/internal/scene"
	"unit-circle.klederson.com/internal/trig"
)

var (
	flagNoSnap  bool
	flagRadians bool
	flagRadius  int
	flagPointer string
	flagLogFile string
	flagDebug   bool
	flagOut     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unit-circle",
		Short: "Unit Circle - interactive trigonometry in the terminal",
		Long: `Unit Circle draws the unit circle and the six trigonometric segments
(sine, cosine, tangent, secant, cosecant, cotangent) for the angle under the
mouse pointer, with live values.

Keys: S toggles snapping to the axes, R toggles radians, left/right arrows
change the radius, Q quits.`,
		PersistentPreRunE: setupLogging,
		RunE:              run,
		SilenceUsage:      true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagNoSnap, "no-snap", false, "Start with snapping to the axis points disabled")
	pf.BoolVar(&flagRadians, "radians", false, "Show angles in radians")
	pf.IntVar(&flagRadius, "radius", config.DefaultRadius,
		fmt.Sprintf("Circle radius in canvas pixels (%d-%d)", config.MinRadius, config.MaxRadius))
	pf.StringVar(&flagPointer, "pointer", "", "Pointer position on the 1000x600 canvas, as x,y")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to PNG and print its values",
		RunE:  render,
	}
	renderCmd.Flags().StringVarP(&flagOut, "out", "o", "unit-circle.png", "Output PNG path")
	rootCmd.AddCommand(renderCmd)

	return rootCmd
}

var logCloser io.Closer

func setupLogging(cmd *cobra.Command, args []string) error {
	if flagLogFile == "" {
		return nil
	}
	l, closer, err := logging.OpenFile(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	logCloser = closer
	logging.SetLogger(l)
	gg.SetLogger(l.With("component", "gg"))
	return nil
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
	}
}

func viewFromFlags() scene.ViewConfig {
	return scene.ViewConfig{
		Snap:    !flagNoSnap,
		Radians: flagRadians,
		Radius:  scene.ClampRadius(flagRadius),
	}
}

func run(cmd *cobra.Command, args []string) error {
	defer closeLog()

	model := app.New(viewFromFlags())
	if flagPointer != "" {
		p, err := parsePointer(flagPointer)
		if err != nil {
			return err
		}
		model = model.WithPointer(p)
	}

	logging.L().Info("starting", "view", fmt.Sprintf("%+v", viewFromFlags()))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}

func render(cmd *cobra.Command, args []string) error {
	defer closeLog()

	pointer := scene.Origin
	if flagPointer != "" {
		p, err := parsePointer(flagPointer)
		if err != nil {
			return err
		}
		pointer = p
	}

	frame := scene.Compute(viewFromFlags(), pointer, trig.Vec2{})
	for _, l := range scene.HUD(frame, scene.LightTheme) {
		fmt.Fprintln(cmd.OutOrStdout(), l.S)
	}

	if err := raster.Export(frame, flagOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagOut)
	return nil
}

// parsePointer reads an "x,y" canvas position.
func parsePointer(s string) (trig.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return trig.Vec2{}, fmt.Errorf("pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return trig.Vec2{}, fmt.Errorf("pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return trig.Vec2{}, fmt.Errorf("pointer y: %w", err)
	}
	return trig.V(x, y), nil
}
