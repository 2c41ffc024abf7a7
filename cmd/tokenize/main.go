package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

var patterns = map[string]textstats.Pattern{
	"words":      textstats.Words,
	"whitespace": textstats.Whitespace,
	"paragraphs": textstats.Paragraphs,
	"lines":      textstats.Lines,
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tokenize <words|whitespace|paragraphs|lines> [text]")
		fmt.Println("       tokenize <pattern>          (interactive mode)")
		os.Exit(1)
	}

	pattern, ok := patterns[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown pattern: %s\n", os.Args[1])
		os.Exit(1)
	}
	tok := textstats.NewTokenizer(pattern)
	norm := textstats.NewNormalizer()

	// If text provided as argument, tokenize and exit
	if len(os.Args) > 2 {
		text := strings.Join(os.Args[2:], " ")
		output, _ := json.Marshal(tok.Tokenize(text))
		fmt.Println(string(output))
		return
	}

	// Interactive mode
	fmt.Printf("Tokenizer (interactive mode, pattern %s = %s)\n", pattern.Name, pattern)
	fmt.Println("Type a line, press Enter to tokenize. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}

		tokens := tok.Tokenize(text)
		output, _ := json.Marshal(tokens)
		fmt.Printf("  %s\n", output)
		tally, _ := json.Marshal(textstats.Top(textstats.NewTally(tokens, norm), textstats.DefaultLimit))
		fmt.Printf("  %s\n\n", tally)
	}
}
