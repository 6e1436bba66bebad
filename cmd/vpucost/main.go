package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/DariaMityagina/npu-nn-cost-model/pkg/costmodel"
	"github.com/DariaMityagina/npu-nn-cost-model/pkg/profile"
)

func main() {
	opts, err := parseArgs("vpucost", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	model := costmodel.Load(opts.modelPath)
	if !model.Initialized() {
		fmt.Fprintf(os.Stderr, "WARNING: model %s not initialized (%v), using simplistic fallback\n",
			opts.modelPath, model.LoadError())
	}

	var popts []profile.Option
	if opts.verbose {
		popts = append(popts, profile.WithVerbose(os.Stdout))
	}
	profiler := profile.New(model, popts...)

	result, err := profiler.Run(opts.params, opts.mode, opts.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s execution %s: %v\n", opts.mode, opts.target, result)
}
