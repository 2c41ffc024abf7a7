package main

import (
	"fmt"
	"os"

	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	path := os.Args[1]
	command := os.Args[2]

	var dict *textstats.Dictionary
	var err error
	if command == "init" {
		dict, err = textstats.NewDictionaryFromWords(nil)
	} else {
		dict, err = textstats.NewDictionary(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stoplist: %v\n", err)
		os.Exit(1)
	}
	defer dict.Close()

	switch command {
	case "init":
		if err := dict.SaveAs(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating stoplist: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created: %s\n", path)

	case "add":
		if len(os.Args) < 4 {
			fmt.Println("Error: add requires at least one word")
			os.Exit(1)
		}
		for _, word := range os.Args[3:] {
			if err := dict.AddWord(word); err != nil {
				fmt.Fprintf(os.Stderr, "Error adding word '%s': %v\n", word, err)
				os.Exit(1)
			}
			fmt.Printf("Added: %s\n", word)
		}
		save(dict)
		fmt.Printf("Total words: %d\n", dict.WordCount())

	case "remove":
		if len(os.Args) < 4 {
			fmt.Println("Error: remove requires at least one word")
			os.Exit(1)
		}
		for _, word := range os.Args[3:] {
			if err := dict.RemoveWord(word); err != nil {
				fmt.Fprintf(os.Stderr, "Error removing word '%s': %v\n", word, err)
				os.Exit(1)
			}
			fmt.Printf("Removed: %s\n", word)
		}
		save(dict)
		fmt.Printf("Total words: %d\n", dict.WordCount())

	case "contains":
		if len(os.Args) < 4 {
			fmt.Println("Error: contains requires a word")
			os.Exit(1)
		}
		word := os.Args[3]
		if dict.Contains(word) {
			fmt.Printf("'%s' exists in stoplist\n", word)
		} else {
			fmt.Printf("'%s' NOT in stoplist\n", word)
			os.Exit(1)
		}

	case "stats":
		fmt.Printf("Stoplist: %s\n", path)
		fmt.Printf("Word count: %d\n", dict.WordCount())

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func save(dict *textstats.Dictionary) {
	if err := dict.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving stoplist: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: stoplist <stoplist.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init                    Create an empty stoplist")
	fmt.Println("  add <word> [word...]    Add words to stoplist")
	fmt.Println("  remove <word> [word...] Remove words from stoplist")
	fmt.Println("  contains <word>         Check if word exists")
	fmt.Println("  stats                   Show stoplist statistics")
}
