package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/lispcalc"
)

const version = "0.1.0"

func main() {
	log.SetFlags(0)
	var (
		inline, pretty, verb      string
		quiet, consts, dump, echo bool
		prec                      int
	)
	flag.StringVar(&inline, "e", "", "evaluate `expression` and exit")
	flag.StringVar(&pretty, "p", "", "print `expression` in canonical form and exit")
	flag.BoolVar(&dump, "dump", false, "with -p, print the full parse tree structure")
	flag.BoolVar(&quiet, "q", false, "do not print the banner")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string for numbers")
	flag.BoolVar(&consts, "consts", false, "give pi and e their values")
	flag.IntVar(&prec, "prec", 64, "precision in bits of constants before rounding")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []lispcalc.ContextOption{lispcalc.Prec(uint(prec))}
	if consts {
		opts = append(opts, lispcalc.WithResolver(lispcalc.Constants))
	}
	r := &runner{
		ctx:  lispcalc.NewContext(opts...),
		out:  bufio.NewWriter(os.Stdout),
		verb: verb + "\n",
		echo: echo,
	}
	defer r.out.Flush()

	switch {
	case pretty != "":
		a, err := lispcalc.Parse(pretty)
		if err != nil {
			log.Fatal(err)
		}
		if dump {
			spew.Fdump(r.out, a)
			return
		}
		fmt.Fprintln(r.out, a)
	case inline != "":
		if !r.line(inline) {
			r.out.Flush()
			os.Exit(1)
		}
	case flag.NArg() == 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		failed, err := r.loop(f, "")
		if err != nil {
			r.out.Flush()
			log.Fatal(err)
		}
		if failed > 0 {
			r.out.Flush()
			os.Exit(1)
		}
	default:
		if !quiet {
			fmt.Fprintf(r.out, "lispcalc v%s\nPress Ctrl-D to exit.\n\n", version)
		}
		if _, err := r.loop(os.Stdin, "> "); err != nil {
			r.out.Flush()
			log.Fatal(err)
		}
		fmt.Fprintln(r.out)
	}
}
