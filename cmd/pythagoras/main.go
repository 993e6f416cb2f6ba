package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/pythagoras/internal/config"
	"github.com/ensigniasec/pythagoras/internal/export"
	"github.com/ensigniasec/pythagoras/internal/geometry"
	"github.com/ensigniasec/pythagoras/internal/render"
	"github.com/ensigniasec/pythagoras/internal/report"
	"github.com/ensigniasec/pythagoras/internal/triangle"
	"github.com/ensigniasec/pythagoras/internal/tui"
	"github.com/ensigniasec/pythagoras/internal/validate"
	"github.com/ensigniasec/pythagoras/internal/visualizer"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile = config.DefaultPath
	verbose    bool
	jsonOutput bool

	// Loaded in PersistentPreRun.
	cfg = config.Default()

	rootCmd = &cobra.Command{
		Use:   "pythagoras",
		Short: "An interactive visualizer for the Pythagorean theorem.",
		Long: `Adjust the sides a, b and c of a right triangle and watch whether a² + b² = c² holds. ` +
			`Runs a terminal UI by default; the check, render and presets commands work without a terminal.`,
		PersistentPreRun: setup,
		Run:              runTUI,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format instead of rich text")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "Path to a YAML config file")

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (.png or .webp)")
	renderCmd.Flags().Float64Var(&renderA, "a", 0, "Length of side a (defaults to the configured initial value)")
	renderCmd.Flags().Float64Var(&renderB, "b", 0, "Length of side b (defaults to the configured initial value)")
	renderCmd.Flags().Float64Var(&renderC, "c", 0, "Length of side c (defaults to the configured initial value)")
	renderCmd.Flags().StringVar(&renderPreset, "preset", "", "Preset key (1, 2 or 3); overrides --a/--b/--c")
	renderCmd.Flags().IntVar(&renderSupersample, "supersample", 0, "Supersampling factor (defaults to the configured value)")
	_ = renderCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(presetsCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}

// setup applies the log level and loads the config file.
func setup(cmd *cobra.Command, _ []string) {
	if jsonOutput && !verbose {
		logrus.SetLevel(logrus.WarnLevel)
	} else if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	loaded, err := config.Load(configFile)
	if err != nil {
		logrus.Fatalf("Unable to load config: %v", err)
	}
	cfg = loaded
	logrus.Debugf("config: canvas %dx%d, initial %+v", cfg.Canvas.Width, cfg.Canvas.Height, cfg.InitialState())
}

func runTUI(cmd *cobra.Command, _ []string) {
	final, err := tui.Run(cmd.Context(), cfg)
	if err != nil {
		logrus.Fatalf("TUI mode failed: %v", err)
	}
	if err := report.Print(os.Stdout, final, jsonOutput); err != nil {
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive terminal UI [default]",
	Long:  "Run the interactive terminal UI. Use the arrow keys to pick and adjust a side, 1/2/3 for presets, c to solve c and q to quit.",
	Run:   runTUI,
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var checkCmd = &cobra.Command{
	Use:   "check A B C",
	Short: "Check whether a² + b² = c² for the given side lengths",
	Long:  "Check the Pythagorean relation for three side lengths. A failed relation is a normal result and exits 0.",
	Args:  sideArgs,
	Run: func(cmd *cobra.Command, args []string) {
		state, err := parseSides(args)
		if err != nil {
			logrus.Fatal(err)
		}
		logrus.Debugf("checking %+v", state)
		if err := report.Print(os.Stdout, report.Build(state), jsonOutput); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Render flag bindings.
var (
	renderOut         string
	renderA           float64
	renderB           float64
	renderC           float64
	renderPreset      string
	renderSupersample int
)

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var renderCmd = &cobra.Command{
	Use:   "render --out FILE",
	Short: "Render the triangle to a PNG or WebP image",
	Long:  "Render the triangle for the configured or given sides. The format follows the file extension (.png or .webp).",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		state, err := renderState(cmd)
		if err != nil {
			logrus.Fatal(err)
		}
		opts := render.Options{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height, Supersample: cfg.Export.Supersample}
		if cmd.Flags().Changed("supersample") {
			opts.Supersample = renderSupersample
		}

		img, err := render.Snapshot(geometry.Compute(state, cfg.Viewport()), opts)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := export.WriteFile(renderOut, img); err != nil {
			logrus.Fatal(err)
		}
		if err := report.Print(os.Stdout, report.Build(state), jsonOutput); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the preset side triples",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := report.PrintPresets(os.Stdout, triangle.Presets(), jsonOutput); err != nil {
			logrus.Fatal(err)
		}
	},
}

// sideArgs validates the three positional side lengths.
func sideArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(len(triangle.Sides))(cmd, args); err != nil {
		return err
	}
	_, err := parseSides(args)
	return err
}

func parseSides(args []string) (triangle.State, error) {
	var state triangle.State
	for i, side := range triangle.Sides {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return state, fmt.Errorf("%w: side %s: %q", visualizer.ErrInvalidInput, side, args[i])
		}
		if err := validate.Var(v, "side_length"); err != nil {
			return state, fmt.Errorf("%w: side %s must be a finite length >= 0, got %q", visualizer.ErrInvalidInput, side, args[i])
		}
		state = state.With(side, v)
	}
	return state, nil
}

// renderState resolves the sides to draw: preset, then explicit flags, then config.
func renderState(cmd *cobra.Command) (triangle.State, error) {
	if renderPreset != "" {
		p, ok := triangle.PresetForKey(renderPreset)
		if !ok {
			return triangle.State{}, fmt.Errorf("unknown preset %q (want 1, 2 or 3)", renderPreset)
		}
		return p.Apply(), nil
	}
	state := cfg.InitialState()
	flags := map[triangle.Side]struct {
		name  string
		value float64
	}{
		triangle.SideA: {"a", renderA},
		triangle.SideB: {"b", renderB},
		triangle.SideC: {"c", renderC},
	}
	for _, side := range triangle.Sides {
		f := flags[side]
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		if err := validate.Var(f.value, "side_length"); err != nil {
			return state, fmt.Errorf("%w: --%s must be a finite length >= 0", visualizer.ErrInvalidInput, f.name)
		}
		state = state.With(side, f.value)
	}
	return state, nil
}
