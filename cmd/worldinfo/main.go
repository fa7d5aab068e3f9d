package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/World-Forge/internal/world"
)

func main() {
	var inPath string
	var formatName string
	var toClipboard bool

	flag.StringVar(&inPath, "in", "", "world file to inspect")
	flag.StringVar(&formatName, "format", "v2", "file layout: v1 (padded) or v2 (sectioned)")
	flag.BoolVar(&toClipboard, "clipboard", false, "also copy the report to the system clipboard")
	flag.Parse()

	if inPath == "" {
		fmt.Fprintln(os.Stderr, "error: -in is required")
		os.Exit(1)
	}
	format, err := world.ParseFormat(formatName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	wld, err := world.DecodeFile(inPath, format)
	if err != nil {
		log.Fatalf("worldinfo: %v", err)
	}

	report := wld.Report()
	fmt.Print(report)

	if toClipboard {
		if err := clipboard.WriteAll(report); err != nil {
			log.Fatalf("worldinfo: clipboard: %v", err)
		}
		fmt.Println("report copied to clipboard")
	}
}
