// Command gographer is an interactive terminal function plotter.
//
// Definitions are typed one per line in the mini-language:
//
//	x^2 - 2
//	f(x)=sin x
//	(x^2 = 2*x+1)
//	a=[0:5]
//
// Commands: "view <xmin> <xmax>" changes the visible range, "set <name>
// <value>" moves a parameter, "list" shows the current definitions,
// "clear" removes them, "quit" exits.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func main() {
	xmin := flag.Float64("xmin", -10, "initial view lower x bound")
	xmax := flag.Float64("xmax", 10, "initial view upper x bound")
	load := flag.String("f", "", "file with one definition per line, loaded at startup")
	flag.Parse()

	cfg := appConfig{
		xMin: *xmin,
		xMax: *xmax,
	}
	if cfg.xMin >= cfg.xMax {
		fmt.Fprintln(os.Stderr, "gographer: -xmin must be below -xmax")
		os.Exit(1)
	}

	if *load != "" {
		lines, err := readDefinitions(*load)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gographer: %v\n", err)
			os.Exit(1)
		}
		cfg.preload = lines
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "gographer: %v\n", err)
		os.Exit(1)
	}
}

// readDefinitions loads non-empty, non-comment lines from a definitions
// file.
func readDefinitions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening definitions file")
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return lines, nil
}
