// Command ldpc generates sparse binary sketch matrices and reports on them.
//
// Usage:
//
//	ldpc generate -rowlen 64 -ones 8 -height 3 [-unaltered] [-seed N] [-word 64]
//	ldpc stats    -rowlen 64 -ones 8 -height 3 -trials 16 [-metrics]
//	ldpc dist     -a 14 -b 12 -c 15
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/dnbaker/distance"
	"github.com/dnbaker/distance/ldpc"
	"github.com/dnbaker/distance/observability"
)

const usage = `usage: ldpc <command> [flags]

commands:
  generate  dump one matrix to stdout
  stats     compare observed row weights of seeded trials with their expectation
  dist      print every set similarity and distance for the counts a, b, c
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "generate":
		err = runGenerate(args[1:], stdout, stderr)
	case "stats":
		err = runStats(ctx, args[1:], stdout, stderr)
	case "dist":
		err = runDist(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		fmt.Fprintf(stderr, "ldpc %s: %v\n", args[0], err)
		return 1
	}
}

// matrixFlags are shared by generate and stats.
type matrixFlags struct {
	cfg     ldpc.Config
	seed    uint64
	word    int
	verbose bool
}

func (f *matrixFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.cfg.RowLen, "rowlen", 64, "columns per row")
	fs.IntVar(&f.cfg.OnesPerRow, "ones", 8, "ones per base block row")
	fs.IntVar(&f.cfg.Height, "height", 0, "extra permutation rounds per base sub-row")
	fs.BoolVar(&f.cfg.UnalteredInclude, "unaltered", false, "prefix the unpermuted base block rows")
	fs.Uint64Var(&f.seed, "seed", ldpc.DefaultSeed, "random seed")
	fs.IntVar(&f.word, "word", 64, "storage word width in bits (8, 16, 32 or 64)")
	fs.BoolVar(&f.verbose, "v", false, "debug logging to stderr")
}

func (f *matrixFlags) options(stderr io.Writer) []ldpc.Option {
	opts := []ldpc.Option{ldpc.WithSeed(f.seed)}
	if f.verbose {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, ldpc.WithLogger(ldpc.NewLogger(h)))
	}
	return opts
}

func runGenerate(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var mf matrixFlags
	mf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := mf.options(stderr)
	switch mf.word {
	case 8:
		return generate[uint8](stdout, mf.cfg, opts)
	case 16:
		return generate[uint16](stdout, mf.cfg, opts)
	case 32:
		return generate[uint32](stdout, mf.cfg, opts)
	case 64:
		return generate[uint64](stdout, mf.cfg, opts)
	default:
		return fmt.Errorf("unsupported word width %d", mf.word)
	}
}

func generate[W ldpc.Word](w io.Writer, cfg ldpc.Config, opts []ldpc.Option) error {
	m, err := ldpc.Generate[W](cfg, opts...)
	if err != nil {
		return err
	}
	return m.Dump(w)
}

func runStats(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var mf matrixFlags
	mf.register(fs)
	trials := fs.Int("trials", 8, "number of independently seeded matrices")
	concurrency := fs.Int("concurrency", 0, "parallel trials (0 = GOMAXPROCS)")
	metrics := fs.Bool("metrics", false, "print Prometheus metrics of the run")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", *trials)
	}

	reg := prometheus.NewRegistry()
	collector, err := observability.NewPrometheusCollector(reg)
	if err != nil {
		return err
	}

	seeds := make([]uint64, *trials)
	for i := range seeds {
		seeds[i] = mf.seed + uint64(i)
	}

	opts := append(mf.options(stderr), ldpc.WithConcurrency(*concurrency), ldpc.WithMetricsCollector(collector))
	ms, err := ldpc.GenerateTrials[uint64](ctx, mf.cfg, seeds, opts...)
	if err != nil {
		return err
	}

	printStats(stdout, mf.cfg, ms)

	if *metrics {
		return writeMetrics(stdout, reg)
	}
	return nil
}

func printStats(w io.Writer, cfg ldpc.Config, ms []*ldpc.Matrix[uint64]) {
	wantMean, wantVar := ldpc.Expected(cfg)

	var (
		rows        int
		sum, sumVar float64
		minW, maxW  = cfg.RowLen + 1, -1
		jaccard     float64
		pairs       int
	)
	for _, m := range ms {
		s := m.Stats()
		if s.Rows == 0 {
			continue
		}
		rows += s.Rows
		sum += s.Mean * float64(s.Rows)
		sumVar += s.Variance
		minW = min(minW, s.Min)
		maxW = max(maxW, s.Max)

		for i := m.Prefix + 1; i < m.Rows; i++ {
			c := distance.CountsWords(m.Row(i-1), m.Row(i))
			if c.Union() > 0 {
				jaccard += c.Score(distance.JaccardSimilarity)
				pairs++
			}
		}
	}

	fmt.Fprintf(w, "trials:        %d\n", len(ms))
	fmt.Fprintf(w, "rows/trial:    %d\n", cfg.Rows())
	if rows == 0 {
		return
	}
	fmt.Fprintf(w, "row weight:    mean %.4f (expected %.4f)\n", sum/float64(rows), wantMean)
	fmt.Fprintf(w, "               variance %.4f (expected %.4f)\n", sumVar/float64(len(ms)), wantVar)
	fmt.Fprintf(w, "               min %d max %d\n", minW, maxW)
	if pairs > 0 {
		fmt.Fprintf(w, "adjacent rows: mean jaccard %.4f\n", jaccard/float64(pairs))
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func runDist(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	a := fs.Uint64("a", 14, "size of the intersection")
	b := fs.Uint64("b", 12, "elements only in the first set")
	c := fs.Uint64("c", 15, "elements only in the second set")
	p := fs.Float64("p", 1, "Minkowski exponent")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *p <= 0 {
		return fmt.Errorf("p must be positive, got %g", *p)
	}

	fmt.Fprintf(stdout, "%-16s %f\n", "Minkowski", distance.MinkowskiDistance(*p)(*a, *b, *c))
	for _, m := range distance.Metrics() {
		f, err := distance.Provider(m)
		if err != nil {
			return err
		}
		kind := "similarity"
		if m.IsDistance() {
			kind = "distance"
		}
		fmt.Fprintf(stdout, "%-16s %f (%s)\n", m, f(*a, *b, *c), kind)
	}
	return nil
}
