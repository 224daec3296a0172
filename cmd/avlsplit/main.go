package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/npillmayer/avl"
	"github.com/npillmayer/avl/printer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	app.RunAndExitOnError()
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "avlsplit",
		Usage: "informal benchmarking and debugging CLI tool for AVL trees with split and join",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "trace structural operations of the tree",
			},
		},
		Before: func(cctx *cli.Context) error {
			gtrace.CoreTracer = gologadapter.New()
			if cctx.Bool("trace") {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			} else {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
			}
			return nil
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "bench",
			Usage:  "split trees of growing size and report the cost of the joins involved",
			Action: runBench,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "iterations",
					Value: 10,
					Usage: "number of trees to build",
				},
				&cli.IntFlag{
					Name:  "step",
					Value: 10000,
					Usage: "tree i gets step*i random keys",
				},
				&cli.Int64Flag{
					Name:    "seed",
					Usage:   "seed for random keys; 0 picks one from the clock",
					EnvVars: []string{"AVLSPLIT_SEED"},
				},
			},
		},
		{
			Name:   "demo",
			Usage:  "build a small tree, join a second one and print both steps",
			Action: runDemo,
		},
		{
			Name:      "print",
			Usage:     "insert keys into an empty tree and print it",
			ArgsUsage: "<key> [<key> ...]",
			Action:    runPrint,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "dot",
					Usage: "output Graphviz DOT instead of ASCII",
				},
				&cli.BoolFlag{
					Name:  "sizes",
					Usage: "print subtree sizes",
				},
			},
		},
	}
	return app
}

// benchmarkKey is the insertion index of the key a tree is split at.
const benchmarkKey = 3232

func runBench(cctx *cli.Context) error {
	iterations, step := cctx.Int("iterations"), cctx.Int("step")
	if iterations < 1 || step < 1 {
		return fmt.Errorf("need positive iterations and step, have %d and %d", iterations, step)
	}
	seed := cctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	w := cctx.App.Writer
	fmt.Fprintf(w, "seed: %d\n", seed)
	for i := 1; i <= iterations; i++ {
		n := step * i
		tree := avl.New[string]()
		remember := min(benchmarkKey, n-1)
		var randomKey int
		for j := 0; j < n; j++ {
			key := int(r.Int31())
			if _, err := tree.Insert(key, "a"); err != nil && !errors.Is(err, avl.ErrDuplicateKey) {
				return err
			}
			if j == remember {
				randomKey = key
			}
		}
		fmt.Fprintf(w, "iteration %d: %d keys, height %d\n", i, tree.Size(), tree.Height())
		tree, err := benchSplit(w, tree, randomKey)
		if err != nil {
			return err
		}
		root, err := tree.Root()
		if err != nil {
			return err
		}
		if pred := tree.Predecessor(root); pred != nil {
			if _, err = benchSplit(w, tree, pred.Key()); err != nil {
				return err
			}
		}
	}
	return nil
}

// benchSplit splits tree at key, reports the join statistics and
// re-joins both halves.
func benchSplit(w io.Writer, tree *avl.Tree[string], key int) (*avl.Tree[string], error) {
	v, err := tree.Search(key)
	if err != nil {
		return nil, err
	}
	smaller, bigger, stats, err := tree.SplitWithStats(key)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "    split at %10d: %2d joins, mean cost %5.2f, max cost %2d\n",
		key, stats.Joins, stats.Mean(), stats.Max)
	if _, err = smaller.Join(avl.NewNode(key, v), bigger); err != nil {
		return nil, err
	}
	return smaller, nil
}

func runDemo(cctx *cli.Context) error {
	w := cctx.App.Writer
	config := printer.ConfigFromTerminal()
	tree := avl.New[string]()
	for _, k := range []int{18, 19, 17, 20, 16} {
		if _, err := tree.Insert(k, strconv.Itoa(k)); err != nil {
			return err
		}
	}
	if err := printer.Fprint(w, tree, config); err != nil {
		return err
	}
	other := avl.New[string]()
	if _, err := other.Insert(14, "14"); err != nil {
		return err
	}
	cost, err := tree.Join(avl.NewNode(15, "15"), other)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\njoined {14} at 15 with cost %d:\n\n", cost)
	return printer.Fprint(w, tree, config)
}

func runPrint(cctx *cli.Context) error {
	if cctx.NArg() == 0 {
		return fmt.Errorf("need to provide keys as arguments")
	}
	tree := avl.New[string]()
	for _, arg := range cctx.Args().Slice() {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("not a key: %q", arg)
		}
		if _, err = tree.Insert(k, arg); err != nil {
			return err
		}
	}
	if cctx.Bool("dot") {
		return printer.Dot(cctx.App.Writer, tree)
	}
	config := printer.ConfigFromTerminal()
	config.ShowValues = false
	config.ShowSize = cctx.Bool("sizes")
	return printer.Fprint(cctx.App.Writer, tree, config)
}
