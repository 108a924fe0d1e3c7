package main

import (
	"fmt"
	"os"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TERMINAL OUTPUT

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// printMarkdown renders markdown to the terminal when stdout is a
// terminal, otherwise prints the text as-is
func printMarkdown(text string) {
	if !isTerminal(os.Stdout) {
		fmt.Println(text)
		return
	}

	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(),
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		fmt.Println(text)
		return
	}
	if rendered, err := renderer.Render(text); err == nil {
		fmt.Print(strings.TrimLeft(rendered, "\n"))
	} else {
		fmt.Println(text)
	}
}
