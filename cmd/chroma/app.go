package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/chroma/bfs"
	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/internal/config"
	"github.com/katalvlaran/chroma/internal/graphio"
	"github.com/katalvlaran/chroma/internal/palette"
)

const (
	GraphFlag    = "graph"
	PaletteFlag  = "palette"
	StartFlag    = "start"
	FormatFlag   = "format"
	TimeoutFlag  = "timeout"
	MaxStepsFlag = "max-steps"
	ParallelFlag = "parallel"
	KindFlag     = "kind"
	SizeFlag     = "n"
	SecondFlag   = "m"
	ProbFlag     = "p"
	SeedFlag     = "seed"
	IDsFlag      = "ids"
	PrefixFlag   = "prefix"
)

// Exit codes.
const (
	exitFailure    = 1
	exitInfeasible = 2
)

// newApp wires the commands with defaults taken from cfg.
func newApp(cfg *config.Config, logger *zap.Logger) *cli.App {
	return &cli.App{
		Name:    "chroma",
		Usage:   "color graph vertices from a fixed palette by backtracking",
		Version: Version,
		Commands: []*cli.Command{
			colorCommand(cfg, logger),
			validateCommand(logger),
			generateCommand(cfg),
		},
	}
}

func colorCommand(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "Color an adjacency document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: GraphFlag, Aliases: []string{"g"}, Usage: "adjacency document (YAML or JSON), - for stdin", Required: true},
			&cli.StringFlag{Name: PaletteFlag, Usage: "comma-separated colors; overrides the document palette", Value: strings.Join(cfg.Palette, ",")},
			&cli.StringFlag{Name: StartFlag, Usage: "color only the component of this vertex"},
			&cli.StringFlag{Name: FormatFlag, Aliases: []string{"f"}, Usage: "json or yaml", Value: cfg.Format},
			&cli.DurationFlag{Name: TimeoutFlag, Usage: "abort the search after this long (0 = no limit)", Value: cfg.Timeout},
			&cli.IntFlag{Name: MaxStepsFlag, Usage: "color attempts per component (0 = no limit)", Value: cfg.MaxSteps},
			&cli.IntFlag{Name: ParallelFlag, Usage: "components colored concurrently", Value: cfg.Parallel},
		},
		Action: func(cCtx *cli.Context) error {
			format, err := graphio.ParseFormat(cCtx.String(FormatFlag))
			if err != nil {
				return cli.Exit(err, exitFailure)
			}
			doc, err := readDocument(cCtx.String(GraphFlag))
			if err != nil {
				return cli.Exit(err, exitFailure)
			}

			var p coloring.Palette
			if cCtx.IsSet(PaletteFlag) || doc.Palette == nil {
				p, err = palette.Parse(cCtx.String(PaletteFlag))
			} else {
				p, err = palette.FromList(doc.Palette)
			}
			if err != nil {
				return cli.Exit(err, exitFailure)
			}

			ctx := cCtx.Context
			if d := cCtx.Duration(TimeoutFlag); d > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}
			var st coloring.Stats
			opts := []coloring.Option{
				coloring.WithContext(ctx),
				coloring.WithLogger(logger),
				coloring.WithMaxSteps(cCtx.Int(MaxStepsFlag)),
				coloring.WithStats(&st),
			}

			logger.Info("coloring",
				zap.Int("vertices", doc.Graph.VertexCount()),
				zap.Int("edges", doc.Graph.EdgeCount()),
				zap.Strings("palette", p))

			var report *graphio.Report
			if start := cCtx.String(StartFlag); start != "" {
				a, err := coloring.ColorComponent(doc.Graph, start, p, nil, opts...)
				switch {
				case errors.Is(err, coloring.ErrInfeasible):
					report = graphio.NewReport(doc.Graph, nil, []string{start}, st)
				case err != nil:
					return cli.Exit(err, exitFailure)
				default:
					report = graphio.NewReport(doc.Graph, a, nil, st)
				}
			} else {
				opts = append(opts, coloring.WithParallelComponents(cCtx.Int(ParallelFlag)))
				res, err := coloring.ColorGraph(doc.Graph, p, opts...)
				if err != nil {
					return cli.Exit(err, exitFailure)
				}
				var roots []string
				for _, c := range res.Infeasible() {
					roots = append(roots, c.Root)
				}
				report = graphio.NewReport(doc.Graph, res.Assignment, roots, st)
			}

			if err = graphio.WriteReport(cCtx.App.Writer, format, report); err != nil {
				return cli.Exit(err, exitFailure)
			}
			if len(report.Infeasible) > 0 {
				return cli.Exit(fmt.Sprintf("palette of %d colors is insufficient for %d component(s)", len(p), len(report.Infeasible)), exitInfeasible)
			}

			return nil
		},
	}
}

func validateCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check an adjacency document and summarise the graph",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: GraphFlag, Aliases: []string{"g"}, Usage: "adjacency document (YAML or JSON), - for stdin", Required: true},
		},
		Action: func(cCtx *cli.Context) error {
			doc, err := readDocument(cCtx.String(GraphFlag))
			if err != nil {
				logger.Debug("validation failed", zap.Error(err))
				return cli.Exit(err, exitFailure)
			}
			g := doc.Graph
			comps, err := bfs.Components(g, bfs.WithContext(cCtx.Context))
			if err != nil {
				return cli.Exit(err, exitFailure)
			}
			maxDeg := 0
			for _, v := range g.Vertices() {
				d, err := g.Degree(v)
				if err != nil {
					return cli.Exit(err, exitFailure)
				}
				if d > maxDeg {
					maxDeg = d
				}
			}
			fmt.Fprintf(cCtx.App.Writer, "ok vertices=%d edges=%d components=%d max_degree=%d\n",
				g.VertexCount(), g.EdgeCount(), len(comps), maxDeg)

			return nil
		},
	}
}

func generateCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Emit an adjacency document for a classic graph family",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: KindFlag, Usage: "complete|cycle|path|star|wheel|bipartite|grid|random", Value: "cycle"},
			&cli.IntFlag{Name: SizeFlag, Usage: "vertex count (rows for grid, left side for bipartite)", Value: 5},
			&cli.IntFlag{Name: SecondFlag, Usage: "columns for grid, right side for bipartite", Value: 2},
			&cli.Float64Flag{Name: ProbFlag, Usage: "edge probability for random", Value: 0.3},
			&cli.Int64Flag{Name: SeedFlag, Usage: "seed for random", Value: 1},
			&cli.StringFlag{Name: IDsFlag, Usage: "letters|numbers|symbol|excel", Value: "letters"},
			&cli.StringSliceFlag{Name: PrefixFlag, Usage: "left,right side labels for bipartite"},
			&cli.StringFlag{Name: FormatFlag, Aliases: []string{"f"}, Usage: "json or yaml", Value: cfg.Format},
			&cli.BoolFlag{Name: PaletteFlag, Usage: "include the default palette in the document"},
		},
		Action: func(cCtx *cli.Context) error {
			format, err := graphio.ParseFormat(cCtx.String(FormatFlag))
			if err != nil {
				return cli.Exit(err, exitFailure)
			}
			ctor, err := constructorFor(cCtx.String(KindFlag), cCtx.Int(SizeFlag), cCtx.Int(SecondFlag), cCtx.Float64(ProbFlag))
			if err != nil {
				return cli.Exit(err, exitFailure)
			}
			bopts := []builder.BuilderOption{builder.WithSeed(cCtx.Int64(SeedFlag))}
			ids, err := idSchemeFor(cCtx.String(IDsFlag), cCtx.Int(SizeFlag))
			if err != nil {
				return cli.Exit(err, exitFailure)
			}
			bopts = append(bopts, ids)
			if prefix := cCtx.StringSlice(PrefixFlag); len(prefix) > 0 {
				if len(prefix) != 2 {
					return cli.Exit(fmt.Sprintf("--%s wants two labels, got %d", PrefixFlag, len(prefix)), exitFailure)
				}
				bopts = append(bopts, builder.WithPartitionPrefix(prefix[0], prefix[1]))
			}

			g, err := builder.BuildGraph(bopts, ctor)
			if err != nil {
				return cli.Exit(err, exitFailure)
			}
			var pal []string
			if cCtx.Bool(PaletteFlag) {
				pal = cfg.Palette
			}
			if err = graphio.WriteGraph(cCtx.App.Writer, format, g, pal); err != nil {
				return cli.Exit(err, exitFailure)
			}

			return nil
		},
	}
}

// constructorFor maps a family name to its builder.
func constructorFor(kind string, n, m int, p float64) (builder.Constructor, error) {
	switch kind {
	case "complete":
		return builder.Complete(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "bipartite":
		return builder.CompleteBipartite(n, m), nil
	case "grid":
		return builder.Grid(n, m), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

// maxSymbolIDs is the range of builder.SymbolIDFn ("A".."Z").
const maxSymbolIDs = 26

// idSchemeFor maps a scheme name to its builder option for n vertices.
func idSchemeFor(name string, n int) (builder.BuilderOption, error) {
	switch name {
	case "letters":
		return builder.WithLetterIDs(), nil
	case "numbers":
		return builder.WithDefaultIDs(), nil
	case "symbol":
		if n > maxSymbolIDs {
			return nil, fmt.Errorf("symbol ids cover at most %d vertices, got n=%d", maxSymbolIDs, n)
		}
		return builder.WithSymbolIDs(), nil
	case "excel":
		return builder.WithExcelColumnIDs(), nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", name)
	}
}

// readDocument decodes path, or stdin for "-".
func readDocument(path string) (*graphio.Document, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return graphio.Decode(r)
}
