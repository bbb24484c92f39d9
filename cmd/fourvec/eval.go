package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fourvec/fourvec/cli"
	"github.com/fourvec/fourvec/lorentz"
)

// runEval implements "fourvec eval t x y z [-beta b]". Flags may appear
// anywhere so that negative components are not mistaken for flags.
func runEval(args []string, stdout, stderr io.Writer) int {
	var (
		positional []string
		beta       float64
		boost      bool
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if strings.HasPrefix(arg, "-") && name == "beta" {
			if !hasValue {
				if i+1 >= len(args) {
					cli.Errorf(stderr, "-beta requires a value")
					return 2
				}
				value = args[i+1]
				i++
			}
			b, err := strconv.ParseFloat(value, 64)
			if err != nil {
				cli.Errorf(stderr, "-beta: %v", err)
				return 2
			}
			beta, boost = b, true
			continue
		}
		positional = append(positional, arg)
	}

	if len(positional) != 4 {
		cli.Errorf(stderr, "eval requires four components: t x y z")
		return 2
	}

	var c [4]float64
	for i, s := range positional {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			cli.Errorf(stderr, "component %d: %v", i+1, err)
			return 2
		}
		c[i] = f
	}
	v := lorentz.New(c[0], c[1], c[2], c[3])

	fmt.Fprintf(stdout, "vector:   %v\n", v)
	fmt.Fprintf(stdout, "interval: %v\n", v.Interval())
	fmt.Fprintf(stdout, "norm:     %v\n", v.Norm())
	fmt.Fprintf(stdout, "dot:      %v\n", v.Dot(v))

	if boost {
		if beta <= -1 || beta >= 1 {
			cli.Warnf(stderr, "|beta| >= 1, boosted components will not be finite")
		}
		b := v.Boosted(beta)
		fmt.Fprintf(stdout, "boosted:  %v\n", b)
		fmt.Fprintf(stdout, "norm':    %v\n", b.Norm())
	}
	return 0
}
