package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/kraitsura/lelscale/pkg/config"
	"github.com/kraitsura/lelscale/pkg/export"
	"github.com/kraitsura/lelscale/pkg/loader"
	"github.com/kraitsura/lelscale/pkg/logging"
	"github.com/kraitsura/lelscale/pkg/model"
	"github.com/kraitsura/lelscale/pkg/reading"
	"github.com/kraitsura/lelscale/pkg/scale"
	"github.com/kraitsura/lelscale/pkg/ui"
	"github.com/kraitsura/lelscale/pkg/units"
	"github.com/kraitsura/lelscale/pkg/watcher"
	"github.com/kraitsura/lelscale/pkg/zone"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

const watchDebounce = 200 * time.Millisecond

type options struct {
	gas           string
	concentration float64
	zoom          bool
	catalog       string
	configPath    string
	pick          bool
	watch         bool
	robotReading  bool
	robotSweep    int
	robotCatalog  bool
	exportSVG     string
	exportPNG     string
	logFile       string
	debug         bool
	version       bool
	help          bool
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("lelscale", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.gas, "gas", "", "Gas id to select (see --robot-catalog)")
	fs.Float64Var(&o.concentration, "concentration", 0, "Starting concentration in % vol")
	fs.BoolVar(&o.zoom, "zoom", false, "Zoom the scale onto the explosive range")
	fs.StringVar(&o.catalog, "catalog", "", "Path to a YAML gas catalog (default: built-in)")
	fs.StringVar(&o.configPath, "config", "", "Path to config file (default: user config dir)")
	fs.BoolVar(&o.pick, "pick", false, "Choose the gas from a list before starting")
	fs.BoolVar(&o.watch, "watch", false, "Reload the catalog file when it changes")
	fs.BoolVar(&o.robotReading, "robot-reading", false, "Print the reading as JSON and exit")
	fs.IntVar(&o.robotSweep, "robot-sweep", 0, "Print N evenly spaced readings across the scale as JSON")
	fs.BoolVar(&o.robotCatalog, "robot-catalog", false, "Print the gas catalog as JSON and exit")
	fs.StringVar(&o.exportSVG, "export-svg", "", "Write an SVG snapshot of the scale to this path")
	fs.StringVar(&o.exportPNG, "export-png", "", "Write a PNG snapshot of the scale to this path")
	fs.StringVar(&o.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.version, "version", false, "Show version")
	fs.BoolVar(&o.help, "help", false, "Show help")

	err := fs.Parse(args)
	return o, fs, err
}

// applyConfig fills options the user did not set on the command line.
func applyConfig(o *options, set map[string]bool, cfg config.Config) {
	if !set["gas"] && cfg.DefaultGas != "" {
		o.gas = cfg.DefaultGas
	}
	if !set["zoom"] && cfg.Zoomed {
		o.zoom = true
	}
	if !set["catalog"] && cfg.Catalog != "" {
		o.catalog = cfg.Catalog
	}
	if !set["watch"] && cfg.Watch {
		o.watch = true
	}
	if !set["log-file"] && cfg.LogFile != "" {
		o.logFile = cfg.LogFile
	}
	if !set["debug"] && cfg.Debug {
		o.debug = true
	}
}

func (o options) robot() bool {
	return o.robotReading || o.robotSweep != 0 || o.robotCatalog
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if o.help {
		fmt.Fprintln(stdout, "Usage: lelscale [options]")
		fmt.Fprintln(stdout, "\nAn interactive LEL/UEL flammability scale for combustible gases.")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return 0
	}
	if o.version {
		fmt.Fprintf(stdout, "lelscale version %s\n", version)
		return 0
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfgPath := o.configPath
	if cfgPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			cfgPath = p
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	applyConfig(&o, set, cfg)

	if err := logging.Init(o.debug, o.logFile); err != nil {
		fmt.Fprintf(stderr, "Error opening log file: %v\n", err)
		return 1
	}
	defer logging.Sync()
	logging.Infow("starting", "version", version, "catalog", o.catalog, "gas", o.gas)

	catalog, err := loader.LoadCatalog(o.catalog)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading gas catalog: %v\n", err)
		return 1
	}

	interactive := isTerminal(os.Stdout)
	if !o.robot() && !interactive && o.exportSVG == "" && o.exportPNG == "" {
		o.robotReading = true
	}

	if o.robotCatalog {
		return writeJSON(stdout, stderr, catalogPayload{Count: catalog.Len(), Gases: catalog.Gases()})
	}

	g, err := resolveGas(catalog, o.gas)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if o.robotSweep != 0 {
		points, err := reading.Sweep(g, o.zoom, o.robotSweep)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return writeJSON(stdout, stderr, newSweepPayload(g, o.zoom, points))
	}

	if o.exportSVG != "" || o.exportPNG != "" || o.robotReading {
		r, err := reading.Compute(g, clampToScale(g, o.concentration, o.zoom), o.zoom)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if o.exportSVG != "" || o.exportPNG != "" {
			if err := export.ExportFiles(context.Background(), r, o.exportSVG, o.exportPNG); err != nil {
				fmt.Fprintf(stderr, "Error exporting snapshot: %v\n", err)
				return 1
			}
			logging.Infow("snapshot exported", "svg", o.exportSVG, "png", o.exportPNG)
		}
		if o.robotReading {
			return writeJSON(stdout, stderr, r)
		}
		return 0
	}

	if o.pick {
		id, err := pickGas(catalog, g.ID)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return 0
			}
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		g, _ = catalog.Get(id)
	}

	return runTUI(catalog, g, o, stderr)
}

func runTUI(catalog *model.Catalog, g model.Gas, o options, stderr io.Writer) int {
	m := ui.NewModel(catalog, g.ID, o.zoom).WithConcentration(o.concentration)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if o.watch && o.catalog == "" {
		logging.Warnw("--watch ignored: the built-in catalog never changes")
	}
	if o.watch && o.catalog != "" {
		w, err := watcher.NewCatalogWatcher(o.catalog, watchDebounce, func(c *model.Catalog, err error) {
			p.Send(ui.CatalogReloadedMsg{Catalog: c, Err: err})
		})
		if err != nil {
			fmt.Fprintf(stderr, "Error watching catalog: %v\n", err)
			return 1
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				logging.Errorw("catalog watcher stopped", "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error running lelscale: %v\n", err)
		return 1
	}
	return 0
}

// clampToScale caps c at the display range, as the slider does. Values the
// classifier rejects pass through unchanged so Compute reports them.
func clampToScale(g model.Gas, c float64, zoomed bool) float64 {
	maxScale := scale.DisplayRange(g, zoomed)
	if math.IsInf(c, 0) || c <= maxScale {
		return c
	}
	logging.Infow("concentration clamped to scale", "requested", c, "max_scale", maxScale)
	return maxScale
}

// resolveGas finds id in the catalog; an empty id selects the first entry.
func resolveGas(c *model.Catalog, id string) (model.Gas, error) {
	if id == "" {
		g, ok := c.Default()
		if !ok {
			return model.Gas{}, loader.ErrEmptyCatalog
		}
		return g, nil
	}
	g, ok := c.Get(id)
	if !ok {
		return model.Gas{}, fmt.Errorf("unknown gas %q (known: %v)", id, c.IDs())
	}
	return g, nil
}

func pickGas(c *model.Catalog, current string) (string, error) {
	id := current
	opts := make([]huh.Option[string], 0, c.Len())
	for _, g := range c.Gases() {
		label := fmt.Sprintf("%s  LEL %s  UEL %s", g.DisplayName(), units.FormatLimit(g.LEL), units.FormatLimit(g.UEL))
		opts = append(opts, huh.NewOption(label, g.ID))
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which gas are you measuring?").
			Options(opts...).
			Value(&id),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return id, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type catalogPayload struct {
	Count int         `json:"count"`
	Gases []model.Gas `json:"gases"`
}

type sweepPoint struct {
	Concentration float64   `json:"concentration"`
	Zone          zone.Zone `json:"zone"`
	Display       string    `json:"display"`
	Position      float64   `json:"position"`
	PercentOfLEL  float64   `json:"percent_of_lel"`
}

type sweepPayload struct {
	Gas      string       `json:"gas"`
	Zoomed   bool         `json:"zoomed"`
	MaxScale float64      `json:"max_scale"`
	Points   []sweepPoint `json:"points"`
}

func newSweepPayload(g model.Gas, zoomed bool, rs []reading.Reading) sweepPayload {
	out := sweepPayload{Gas: g.ID, Zoomed: zoomed, Points: make([]sweepPoint, 0, len(rs))}
	for _, r := range rs {
		out.MaxScale = r.MaxScale
		out.Points = append(out.Points, sweepPoint{
			Concentration: r.Concentration,
			Zone:          r.Zone,
			Display:       r.Display,
			Position:      r.Position,
			PercentOfLEL:  r.Stats.PercentOfLEL,
		})
	}
	return out
}

func writeJSON(stdout, stderr io.Writer, v any) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(stderr, "Error encoding JSON: %v\n", err)
		return 1
	}
	return 0
}
