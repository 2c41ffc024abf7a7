package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kerem-kaynak/textstats/pkg/config"
	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

const (
	iterations = 1000
	warmup     = 10
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	inputPath := config.DefaultInput
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}

	fmt.Print("Loading input... ")
	start := time.Now()
	content, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	text := strings.TrimSpace(string(content))
	fmt.Printf("done (%d bytes in %v)\n", len(text), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Full battery
	printHeader("ANALYSES")
	for _, a := range textstats.NewAnalyses(textstats.Options{}) {
		run := a.Run
		bench(a.Name, func() { run(text) })
	}
	printFooter()
	fmt.Println()

	// Stage breakdown
	printHeader("STAGE BREAKDOWN")
	norm := textstats.NewNormalizer()
	tokens := textstats.Split(text, textstats.Words)
	tally := textstats.NewTally(tokens, norm)
	lengths := textstats.NewLengthTable(tokens, norm)

	bench("Split (words)", func() {
		textstats.Split(text, textstats.Words)
	})
	bench("Segments (whitespace)", func() {
		textstats.Segments(text, textstats.Whitespace)
	})
	bench("Tally (cached normalizer)", func() {
		textstats.NewTally(tokens, norm)
	})
	uncached := textstats.NewNormalizerWithSteps(0, textstats.Lowercase)
	bench("Tally (no cache)", func() {
		textstats.NewTally(tokens, uncached)
	})
	bench("Length table", func() {
		textstats.NewLengthTable(tokens, norm)
	})
	bench("Top 10", func() {
		textstats.Top(tally, textstats.DefaultLimit)
	})
	bench("Shortest 10", func() {
		textstats.Shortest(lengths, textstats.DefaultLimit)
	})
	bench("Dedupe", func() {
		textstats.Dedupe(tokens)
	})
	printFooter()
	fmt.Println()

	// Normalizer steps
	printHeader("NORMALIZER STEPS BREAKDOWN")
	bench("Lowercase", func() {
		textstats.Lowercase("Frequently")
	})
	bench("NFC compose", func() {
		textstats.NFC("Cafe\u0301")
	})
	stem := textstats.Stemmer("english")
	bench("Stem English", func() {
		stem("frequently")
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
