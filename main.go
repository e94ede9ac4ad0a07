package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pkg/profile"

	"github.com/lpalum/machine-learning/dataset"
	"github.com/lpalum/machine-learning/gain"
	"github.com/lpalum/machine-learning/impurity"

	flag "github.com/docker/docker/pkg/mflag"
)

var (
	// input/output files
	dataFile = flag.String([]string{"d", "-data"}, "", "csv table of examples, first row is the header")
	outFile  = flag.String([]string{"o", "-output"}, "", "file to output feature scores as csv")
	noHeader = flag.Bool([]string{"-no_header"}, false, "first row is data; columns are named Y, X1..Xn")
	// scoring params
	target   = flag.String([]string{"t", "-target"}, "", "label column, defaults to the first column")
	features = flag.String([]string{"-features"}, "", "comma separated columns to score, defaults to all but the target")
	base     = flag.Float64([]string{"-base"}, impurity.DefaultBase, "logarithm base: 2 for bits, 2.718281828459045 for nats")
	measure  = flag.String([]string{"-impurity"}, "entropy", "impurity measure for evaluating splits: entropy or gini")
	topN     = flag.Int([]string{"n", "-top"}, 20, "number of features to show, 0 for all")
	// runtime params
	nWorkers   = flag.Int([]string{"-workers"}, 1, "number of workers scoring features")
	runProfile = flag.Bool([]string{"-profile"}, false, "cpu profile")
	verbose    = flag.Bool([]string{"v", "-verbose"}, false, "debug logging")
)

type rankOptions struct {
	target   string
	features []string
	base     float64
	measure  impurity.Measure
	nWorkers int
}

func parseRankOpts() (rankOptions, error) {
	o := rankOptions{
		target:   *target,
		features: splitList(*features),
		base:     *base,
		nWorkers: *nWorkers,
	}

	if err := impurity.CheckBase(o.base); err != nil {
		return o, err
	}

	m, err := impurity.ParseMeasure(*measure)
	if err != nil {
		return o, err
	}
	o.measure = m

	return o, nil
}

func (o rankOptions) gainOpts() []gain.Option {
	opts := []gain.Option{
		gain.Base(o.base),
		gain.Impurity(o.measure),
		gain.NumWorkers(o.nWorkers),
	}
	if len(o.features) > 0 {
		opts = append(opts, gain.Features(o.features...))
	}
	return opts
}

func main() {
	flag.Parse()

	setupLogging(*verbose)

	// make sure user specified csv file w/ data
	if *dataFile == "" {
		fmt.Fprintf(os.Stderr, "Usage of infogain:\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opt, err := parseRankOpts()
	if err != nil {
		fatal("invalid option", err)
	}

	if *runProfile {
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opt); err != nil {
		fatal("ranking failed", err)
	}
}

func run(ctx context.Context, opt rankOptions) error {
	f, err := os.Open(*dataFile)
	if err != nil {
		return fmt.Errorf("error opening data file: %w", err)
	}
	defer f.Close()

	t, err := parseCSV(f, *noHeader)
	if err != nil {
		return fmt.Errorf("error parsing input data: %w", err)
	}

	if opt.target != "" {
		if err := t.SetTarget(opt.target); err != nil {
			return err
		}
	}
	slog.Debug("parsed input", "file", *dataFile, "rows", t.Len(), "columns", t.Names(), "target", t.Target())

	parent, err := parentImpurity(t, opt)
	if err != nil {
		return err
	}

	start := time.Now()
	scores, err := gain.Rank(ctx, t, opt.gainOpts()...)
	if err != nil {
		return err
	}
	slog.Info("scored features", "features", len(scores), "workers", opt.nWorkers, "took", time.Since(start))

	writeReport(os.Stdout, reportHeader{
		target:  t.Target(),
		measure: opt.measure.String(),
		base:    opt.base,
		rows:    t.Len(),
		parent:  parent,
	}, scores, *topN)

	if *outFile != "" {
		o, err := os.Create(*outFile)
		if err != nil {
			return fmt.Errorf("error creating %s: %w", *outFile, err)
		}
		defer o.Close()

		if err := saveScores(o, scores); err != nil {
			return fmt.Errorf("error saving scores: %w", err)
		}
		slog.Info("saved scores", "file", *outFile)
	}

	return nil
}

func parentImpurity(t *dataset.Table, opt rankOptions) (float64, error) {
	labels, err := t.Column(t.Target())
	if err != nil {
		return 0, err
	}
	tally := impurity.NewTally(labels)
	return opt.measure.Counts(tally.N, tally.Counts, impurity.Base(opt.base))
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
