package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/eve"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		echo         bool
		prec         int
	)
	flag.StringVar(&inname, "in", "", "input file of JSON expression trees (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%v", "result formatting string")
	flag.IntVar(&prec, "p", 0, "precision of float calculations in bits (0 for float64)")
	flag.BoolVar(&echo, "echo", false, "print expression trees")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must not be negative", prec)
	}

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		if f != os.Stdin {
			defer f.Close()
		}
		ins = append(ins, bufio.NewReader(f))
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	var p []*eve.Expr
	for _, in := range ins {
		a, err := decodeAll(in)
		if err != nil {
			log.Fatal(err)
		}
		p = append(p, a...)
	}

	ctx := eve.NewContext(eve.Prec(uint(prec)))
	run(os.Stdout, ctx, p, verb, echo)
}

// decodeAll reads a stream of JSON expression trees.
func decodeAll(in io.Reader) ([]*eve.Expr, error) {
	var p []*eve.Expr
	d := json.NewDecoder(in)
	for {
		var a eve.Expr
		if err := d.Decode(&a); err != nil {
			if err == io.EOF {
				return p, nil
			}
			return p, err
		}
		p = append(p, &a)
	}
}

// run evaluates each expression and prints its result or error.
func run(w io.Writer, ctx *eve.Context, p []*eve.Expr, verb string, echo bool) {
	verb += "\n"
	for _, a := range p {
		if echo {
			fmt.Fprintf(w, "%v : ", a)
		}
		r, err := ctx.Eval(a)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		fmt.Fprintf(w, verb, r.Any())
	}
}

// infile opens the input file, or returns stdin if inname is "-" or if no
// file is named and std is true. It returns nil if there is no input file.
func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
