package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/epieczko/agents/internal/branding"
	"github.com/epieczko/agents/internal/catalog"
)

// RunInteractive presents the import menu on the importer's output, reads one
// choice (and a follow-up name where needed) from r, and runs the selection.
// An unrecognized choice is reported and imports nothing.
func (i *Importer) RunInteractive(r io.Reader) (catalog.Counts, error) {
	reader := bufio.NewReader(r)

	fmt.Fprintf(i.out, "\n🎯 %s Import Wizard\n\n", branding.DisplayName())
	fmt.Fprintln(i.out, "What would you like to import?")
	fmt.Fprintln(i.out, "1. High priority essentials (recommended start)")
	fmt.Fprintln(i.out, "2. Specific plugin")
	fmt.Fprintln(i.out, "3. By category")
	fmt.Fprintln(i.out, "4. Curated collection")
	fmt.Fprintln(i.out, "5. List all options")
	fmt.Fprint(i.out, "0. Exit\n\n")

	choice, err := prompt(reader, i.out, "Enter choice (0-5): ")
	if err != nil {
		return catalog.Counts{}, err
	}

	switch choice {
	case "1":
		return i.Priority(catalog.PriorityHigh)
	case "2":
		name, err := prompt(reader, i.out, "Plugin name (e.g., python-development): ")
		if err != nil {
			return catalog.Counts{}, err
		}
		return i.Plugin(name)
	case "3":
		name, err := prompt(reader, i.out, "Category (e.g., languages): ")
		if err != nil {
			return catalog.Counts{}, err
		}
		return i.Category(name)
	case "4":
		name, err := prompt(reader, i.out, fmt.Sprintf("Collection (%s): ", strings.Join(i.cfg.Collections, "/")))
		if err != nil {
			return catalog.Counts{}, err
		}
		return i.Recommended(name)
	case "5":
		return catalog.Counts{}, i.ListAvailable()
	case "0":
		fmt.Fprintln(i.out, "Goodbye!")
		return catalog.Counts{}, nil
	default:
		fmt.Fprintln(i.out, "Invalid choice")
		return catalog.Counts{}, nil
	}
}

// prompt writes label and returns the trimmed line read. End of input
// terminates the line rather than failing.
func prompt(reader *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
