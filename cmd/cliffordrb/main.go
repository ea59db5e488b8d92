// Command cliffordrb builds Clifford group tables and draws randomized
// benchmarking samples from the command line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/clifford/clifford"
	"github.com/katalvlaran/clifford/rb"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "cliffordrb"
	myApp.Usage = "Clifford group tables and randomized benchmarking samples"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "tables,t",
			Value: ".",
			Usage: "directory holding precomputed qubits_<n>_cnots_0.dat tables for n > 2",
		},
		cli.IntFlag{
			Name:  "parallelism",
			Value: runtime.GOMAXPROCS(0),
			Usage: "workers used while building tables",
		},
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "specify a log file to output, default goes to stderr",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "suppress progress messages",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "", // when set, the referenced JSON file must exist on disk
			Usage: "config from json file, which will override the command from shell",
		},
	}
	myApp.Commands = []cli.Command{
		{
			Name:  "table",
			Usage: "build or load the table for n qubits and print its sorted circuits",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "qubits,n", Value: 1, Usage: "number of qubits"},
			},
			Action: func(c *cli.Context) error {
				return run(c, runTable)
			},
		},
		{
			Name:  "random",
			Usage: "for seeds 0..count-1 and every n in range, print a sample and its inverse",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "count", Value: 10, Usage: "number of seeds"},
				cli.IntFlag{Name: "min", Value: 1, Usage: "smallest qubit count"},
				cli.IntFlag{Name: "max", Value: 2, Usage: "largest qubit count"},
				cli.BoolFlag{Name: "onthefly", Usage: "sample without tables"},
			},
			Action: func(c *cli.Context) error {
				return run(c, runRandom)
			},
		},
		{
			Name:  "sequence",
			Usage: "print one RB sequence with its recovery element",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "qubits,n", Value: 1, Usage: "number of qubits"},
				cli.IntFlag{Name: "length,m", Value: 10, Usage: "number of random elements"},
				cli.Int64Flag{Name: "seed", Value: rb.DefaultSeed, Usage: "random seed"},
				cli.BoolFlag{Name: "onthefly", Usage: "sample without tables"},
			},
			Action: func(c *cli.Context) error {
				return run(c, runSequence)
			},
		},
	}
	checkError(myApp.Run(os.Args))
}

// run assembles the Config from flags and the optional JSON file, sets up
// logging and hands a buffered stdout to fn.
func run(c *cli.Context, fn func(Config, io.Writer) error) error {
	config := Config{}
	config.TableDir = c.GlobalString("tables")
	config.Parallelism = c.GlobalInt("parallelism")
	config.Log = c.GlobalString("log")
	config.Quiet = c.GlobalBool("quiet")
	config.Qubits = c.Int("qubits")
	config.MinQubits = c.Int("min")
	config.MaxQubits = c.Int("max")
	config.Count = c.Int("count")
	config.Seed = c.Int64("seed")
	config.Length = c.Int("length")
	config.OnTheFly = c.Bool("onthefly")

	if c.GlobalString("c") != "" {
		err := parseJSONConfig(&config, c.GlobalString("c"))
		checkError(err)
	}

	if config.Parallelism <= 0 {
		log.Printf("parallelism %d is not positive, falling back to 1", config.Parallelism)
		config.Parallelism = 1
	}

	// Redirect logs when the user supplied a dedicated log file.
	if config.Log != "" {
		f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		checkError(err)
		defer f.Close()
		log.SetOutput(f)
	}
	if !config.Quiet {
		log.Println("version:", VERSION)
		log.Println("tables:", config.TableDir)
		log.Println("parallelism:", config.Parallelism)
	}

	w := bufio.NewWriter(os.Stdout)
	if err := fn(config, w); err != nil {
		return err
	}
	return errors.WithStack(w.Flush())
}

func newEngine(config Config, seed int64) *rb.Engine {
	return rb.New(
		rb.WithSeed(seed),
		rb.WithTableDir(config.TableDir),
		rb.WithParallelism(config.Parallelism),
	)
}

func runTable(config Config, w io.Writer) error {
	tbl, err := newEngine(config, rb.DefaultSeed).BuildTable(config.Qubits)
	if err != nil {
		return errors.Wrapf(err, "table for %d qubits", config.Qubits)
	}
	if !config.Quiet {
		log.Printf("n=%d size=%d complete=%t max depth=%d", tbl.N(), tbl.Len(), tbl.Complete(), tbl.MaxDepth())
	}
	if _, err = fmt.Fprintf(w, "# %d elements\n", tbl.Len()); err != nil {
		return errors.WithStack(err)
	}
	for _, s := range tbl.Circuits() {
		if _, err = fmt.Fprintln(w, s); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func runRandom(config Config, w io.Writer) error {
	if config.MinQubits < 1 || config.MaxQubits < config.MinQubits {
		return errors.Errorf("bad qubit range [%d, %d]", config.MinQubits, config.MaxQubits)
	}
	useTable := !config.OnTheFly
	for seed := 0; seed < config.Count; seed++ {
		for n := config.MinQubits; n <= config.MaxQubits; n++ {
			eng := newEngine(config, int64(seed))
			el, err := eng.Sample(n, useTable)
			if err != nil {
				return errors.Wrapf(err, "seed %d n %d", seed, n)
			}
			inv, err := eng.Invert(el, nil, useTable)
			if err != nil {
				return errors.Wrapf(err, "seed %d n %d", seed, n)
			}
			if err = checkInverse(el, inv); err != nil {
				return errors.Wrapf(err, "seed %d n %d", seed, n)
			}
			if _, err = fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", seed, n, render(el.Circuit()), render(inv.Circuit())); err != nil {
				return errors.WithStack(err)
			}
		}
	}
	if !config.Quiet {
		log.Printf("%d seeds verified", config.Count)
	}
	return nil
}

func runSequence(config Config, w io.Writer) error {
	seq, err := newEngine(config, config.Seed).Sequence(config.Qubits, config.Length, !config.OnTheFly)
	if err != nil {
		return errors.Wrapf(err, "sequence n %d length %d", config.Qubits, config.Length)
	}
	for i, el := range seq.Elements {
		if _, err = fmt.Fprintf(w, "%d\t%s\n", i, render(el.Circuit())); err != nil {
			return errors.WithStack(err)
		}
	}
	_, err = fmt.Fprintf(w, "recovery\t%s\n", render(seq.Recovery.Circuit()))
	return errors.WithStack(err)
}

// checkInverse guards every printed pair.
func checkInverse(el, inv *clifford.Element) error {
	p, err := clifford.Compose(el, inv)
	if err != nil {
		return err
	}
	if !p.IsIdentity() {
		return errors.Wrap(clifford.ErrInternalConsistency, "sample and inverse do not compose to identity")
	}
	return nil
}

// render prints the empty circuit as "id".
func render(c clifford.Circuit) string {
	if len(c) == 0 {
		return "id"
	}
	return c.String()
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
