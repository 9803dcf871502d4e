package main

import (
	"fmt"
	"io"

	"text-splitter/services"

	"github.com/spf13/pflag"
)

type config struct {
	src          string
	prefix       string
	outputRoot   string
	linesPerFile int
	quiet        bool

	help func(io.Writer)
}

// gui reports whether no input file was given, in which case the window
// asks for one.
func (c config) gui() bool {
	return c.src == ""
}

func parseArgs(args []string) (c config, _ error) {
	var help bool

	flag := pflag.NewFlagSet("flags", pflag.ContinueOnError)
	flag.SortFlags = false

	flag.IntVarP(&c.linesPerFile, "lines", "n", services.DefaultLinesPerFile,
		"maximum number of lines per output file")
	flag.StringVarP(&c.prefix, "prefix", "p", "",
		"output name prefix (default: FILE name without extension)")
	flag.StringVarP(&c.outputRoot, "dir", "d", "",
		"directory to create the output folder in (default: current)")
	flag.BoolVarP(&c.quiet, "quiet", "q", false,
		"only log warnings and errors")

	flag.BoolVarP(&help, "help", "h", false,
		"show this help and exit")

	flag.Usage = func() {
		p := func(a ...interface{}) { fmt.Fprintln(flag.Output(), a...) }
		p("Usage: textsplit [FLAGS] [FILE]")
		p("Split FILE into PREFIX_split_files/PREFIX_1.txt ... PREFIX_N.txt,",
			"each\nstarting with a `--- Part i/N ---` header.")
		p("If FILE is omitted, a window opens to browse for one.")
		flag.PrintDefaults()
	}

	err := flag.Parse(args)
	if err != nil {
		return c, err
	}
	if help {
		c.help = func(w io.Writer) {
			flag.SetOutput(w)
			flag.Usage()
		}
		return c, nil
	}

	if c.linesPerFile < 1 {
		return c, fmt.Errorf("--lines must be at least 1")
	}

	rest := flag.Args()
	switch n := len(rest); {
	case n == 0:
		if flag.Changed("prefix") {
			return c, fmt.Errorf("--prefix needs FILE")
		}
	case n == 1:
		c.src = rest[0]
	default:
		return c, fmt.Errorf("need at most one FILE")
	}

	return c, nil
}
