package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	bignum "github.com/shabbyrobe/go-bignum"
)

// This is a cheap-and-nasty tool for poking at the comparator from the
// shell. It parses two decimal numbers, prints what Compare says about them
// and, with -v, dumps the limb layout of both.
//
// -pad lets you add zero limbs to the top of either number so you can see
// that Compare orders by length first and never renormalizes.

const usage = `Limb comparator

Usage: cmpdump [-v] [-pada <n>] [-padb <n>] <a> <b>`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var verbose bool
	var padA, padB int

	flag.BoolVar(&verbose, "v", false, "Dump both operands")
	flag.IntVar(&padA, "pada", 0, "Zero limbs to add above the top of <a>")
	flag.IntVar(&padB, "padb", 0, "Zero limbs to add above the top of <b>")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage); flag.PrintDefaults() }
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		return fmt.Errorf("missing args")
	}

	a, err := parse(flag.Arg(0), padA)
	if err != nil {
		return err
	}
	b, err := parse(flag.Arg(1), padB)
	if err != nil {
		return err
	}

	if verbose {
		spew.Dump(a.Words(), b.Words())
	}

	ord, err := bignum.CompareChecked(&a, &b)
	if err != nil {
		return err
	}
	fmt.Printf("%d (len %d) is %s %d (len %d): %d\n", a, a.Len, ord, b, b.Len, int(ord))
	return nil
}

func parse(s string, pad int) (out bignum.BigNum, err error) {
	out, accurate, err := bignum.FromString(s)
	if err != nil {
		return out, err
	}
	if !accurate {
		return out, errors.Wrapf(bignum.ErrRange, "operand %q", s)
	}
	if pad < 0 || out.Len+pad > bignum.Capacity {
		return out, errors.Wrapf(bignum.ErrCapacity, "operand %q padded by %d", s, pad)
	}
	out.Len += pad
	return out, nil
}
