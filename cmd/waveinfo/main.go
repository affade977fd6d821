// Command waveinfo prints temporal and spectral properties of Morlet
// wavelets.
//
// Usage:
//
//	waveinfo [flags] [band-or-frequency ...]
//
// Arguments are frequencies in Hz or named EEG bands (delta, theta, alpha,
// beta, gamma), expanded to a frequency grid. Without arguments it prints
// all named bands.
//
// Examples:
//
//	waveinfo 10
//	waveinfo -rate 250 -cycles 5 alpha
//	waveinfo -step 2 beta gamma
//	waveinfo -sigma 0.1 8 10 12
//	waveinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-mne/induced"
	"github.com/cwbudde/algo-mne/wavelet"
)

var bands = []induced.Band{
	{Name: "delta", Low: 1, High: 4},
	{Name: "theta", Low: 4, High: 8},
	{Name: "alpha", Low: 8, High: 12},
	{Name: "beta", Low: 13, High: 30},
	{Name: "gamma", Low: 30, High: 80},
}

func main() {
	rate := flag.Float64("rate", 1000, "sampling rate in Hz")
	cycles := flag.Float64("cycles", wavelet.DefaultCycles, "cycles per wavelet")
	sigma := flag.Float64("sigma", math.NaN(), "fixed envelope width in seconds instead of per-frequency scaling")
	step := flag.Float64("step", 1, "frequency step when expanding band names")
	all := flag.Bool("all", false, "show all named bands")
	list := flag.Bool("list", false, "list known band names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: waveinfo [flags] [band-or-frequency ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints temporal and spectral properties of Morlet wavelets.\n")
		fmt.Fprintf(os.Stderr, "Arguments are frequencies in Hz or named EEG bands.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints all named bands.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  waveinfo 10\n")
		fmt.Fprintf(os.Stderr, "  waveinfo -rate 250 -cycles 5 alpha\n")
		fmt.Fprintf(os.Stderr, "  waveinfo -step 2 beta gamma\n")
		fmt.Fprintf(os.Stderr, "  waveinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	args := flag.Args()
	if len(args) == 0 || *all {
		args = nil
		for _, b := range bands {
			args = append(args, b.Name)
		}
	}

	freqs := resolveFrequencies(args, *step)
	if len(freqs) == 0 {
		fmt.Fprintf(os.Stderr, "error: no frequencies to analyze\n")
		os.Exit(1)
	}

	var bank []wavelet.Wavelet
	var err error
	if math.IsNaN(*sigma) {
		bank, err = wavelet.Morlet(*rate, freqs, *cycles)
	} else {
		bank, err = wavelet.MorletSigma(*rate, freqs, *cycles, *sigma)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printAnalysis(bank, *rate)
}

func printList() {
	for _, b := range bands {
		fmt.Printf("%s\t%g-%g Hz\n", b.Name, b.Low, b.High)
	}
}

// resolveFrequencies turns each argument into one frequency or a band
// grid. Unknown names are skipped with a warning.
func resolveFrequencies(args []string, step float64) []float64 {
	byName := make(map[string]induced.Band, len(bands))
	for _, b := range bands {
		byName[b.Name] = b
	}

	var freqs []float64
	for _, arg := range args {
		arg = strings.ToLower(strings.TrimSpace(arg))
		if f, err := strconv.ParseFloat(arg, 64); err == nil {
			freqs = append(freqs, f)
			continue
		}

		b, ok := byName[arg]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown band %q (use -list to see available)\n", arg)
			continue
		}
		grid, err := induced.BandFrequencies(b, step)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		freqs = append(freqs, grid...)
	}
	return freqs
}

func printAnalysis(bank []wavelet.Wavelet, rate float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tTaps\tDuration [s]\tSigmaT [ms]\tFWHM [Hz]\tL2 Norm\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "---------\t----\t------------\t-----------\t---------\t-------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, w := range bank {
		a := wavelet.Analyze(w, rate)
		if _, err := fmt.Fprintf(tw, "%.2f\t%d\t%.4f\t%.2f\t%.3f\t%.4f\n",
			w.Freq,
			a.Taps,
			a.Duration,
			a.SigmaT*1e3,
			a.FWHMHz,
			a.L2Norm,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
