// Command libcinfo prints the detected CPU features and the kernel
// implementation selected for every dispatched operation.
//
// Usage:
//
//	libcinfo [flags]
//
// Examples:
//
//	libcinfo
//	libcinfo -generic
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-libc/fpmath"
	"github.com/cwbudde/algo-libc/mem"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func main() {
	generic := flag.Bool("generic", false, "force the portable pure-Go kernels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: libcinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints detected CPU features and the selected kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *generic {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	}

	features := cpu.DetectFeatures()

	fmt.Printf("Architecture: %s\n", features.Architecture)
	fmt.Printf("SSE2: %v  AVX: %v  AVX2: %v  NEON: %v  ForceGeneric: %v\n\n",
		features.HasSSE2, features.HasAVX, features.HasAVX2, features.HasNEON, features.ForceGeneric)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Package\tOperation\tKernel\n")
	fmt.Fprintf(tw, "-------\t---------\t------\n")
	printKernels(tw, "mem", mem.Kernels())
	printKernels(tw, "fpmath", fpmath.Kernels())
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}

func printKernels(tw *tabwriter.Writer, pkg string, kernels map[string]string) {
	ops := make([]string, 0, len(kernels))
	for op := range kernels {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", pkg, op, kernels[op])
	}
}
