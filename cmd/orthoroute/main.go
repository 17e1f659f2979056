// Command orthoroute routes the connectors of a YAML scene and prints the
// resulting bend points as YAML.
//
// Usage:
//
//	orthoroute -in scene.yaml [-policy turn|jump] [-step N] [-budget N]
//	           [-png out.png] [-view] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/diagram"
	"github.com/katalvlaran/orthoroute/gridmap"
	"github.com/katalvlaran/orthoroute/render"
	"github.com/katalvlaran/orthoroute/route"
	"github.com/katalvlaran/orthoroute/search"
)

// config holds the parsed command line.
type config struct {
	in      string
	policy  string
	step    float64
	budget  int
	png     string
	view    bool
	verbose bool
}

type routeDoc struct {
	ID      string       `yaml:"id"`
	Outcome string       `yaml:"outcome"`
	Points  [][2]float64 `yaml:"points,flow"`
}

type outputDoc struct {
	Routes []routeDoc `yaml:"routes"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("orthoroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "-", "Scene file (YAML), - for stdin")
	fs.StringVar(&cfg.policy, "policy", "turn", "Search policy: turn or jump")
	fs.Float64Var(&cfg.step, "step", 0, "Grid step in diagram units (default: scene step)")
	fs.IntVar(&cfg.budget, "budget", 0, "Maximum expanded nodes per route, 0 for no limit")
	fs.StringVar(&cfg.png, "png", "", "Also write the routed scene to this PNG file")
	fs.BoolVar(&cfg.view, "view", false, "Preview the routed scene in the terminal")
	fs.BoolVar(&cfg.verbose, "v", false, "Log routing decisions to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: orthoroute [options]\n\n")
		fmt.Fprintf(stderr, "Routes every connector of a scene orthogonally around its shapes.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	d, grid, err := loadScene(cfg.in, stdin)
	if err != nil {
		return err
	}
	if cfg.step != 0 {
		if grid, err = core.NewGrid(cfg.step); err != nil {
			return err
		}
	}
	policy, err := search.ParsePolicy(cfg.policy)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger = log.New(stderr, "", log.LstdFlags)
	}

	r, err := route.NewRouter(d,
		route.WithGrid(grid),
		route.WithMapperOptions(gridmap.WithNormalOffset()),
		route.WithSearchOptions(search.WithPolicy(policy), search.WithMaxExpansions(cfg.budget)),
		route.WithSelfRouter(diagram.LoopRouter{Diagram: d}),
		route.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var out outputDoc
	for _, id := range d.ConnectorIDs() {
		rt, err := r.Compute(id)
		if err != nil {
			return fmt.Errorf("connector %s: %w", id, err)
		}
		if err := d.SetRoute(id, rt.Points); err != nil {
			return err
		}
		out.Routes = append(out.Routes, toDoc(rt))
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if cfg.png != "" {
		if err := writePNG(cfg.png, render.FrameOf(d)); err != nil {
			return err
		}
		logger.Printf("component=cli action=png_written path=%s", cfg.png)
	}
	if cfg.view {
		return view(render.FrameOf(d), grid)
	}

	return nil
}

func loadScene(path string, stdin io.Reader) (*diagram.Diagram, core.Grid, error) {
	if path == "-" {
		return diagram.LoadScene(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, core.Grid{}, err
	}
	defer f.Close()

	return diagram.LoadScene(f)
}

func toDoc(rt route.Route) routeDoc {
	doc := routeDoc{ID: string(rt.ID), Outcome: rt.Outcome.String()}
	if rt.Self {
		doc.Outcome = "self"
	}
	for _, p := range rt.Points {
		doc.Points = append(doc.Points, [2]float64{p.X, p.Y})
	}

	return doc
}

func writePNG(path string, f render.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(out, f, render.DefaultPNGOptions()); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// view draws f in the terminal and waits for any key.
func view(f render.Frame, grid core.Grid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	if err := render.DrawScreen(screen, f, grid); err != nil {
		return err
	}
	screen.Show()
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey, nil:
			return nil
		}
	}
}
