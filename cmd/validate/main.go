package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/quest-engine/internal/storage"
	"github.com/jwebster45206/quest-engine/pkg/state"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <save.json>...\n", os.Args[0])
		os.Exit(1)
	}

	if failed := run(os.Args[1:], os.Stdout, os.Stderr); failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d save files failed validation\n", failed, len(os.Args)-1)
		os.Exit(1)
	}
}

// run validates each file and returns how many failed.
func run(files []string, stdout, stderr io.Writer) int {
	failed := 0
	for _, filename := range files {
		save, err := validateFile(filename)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", filename, err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s: valid (version %d, saved %s)\n",
			filename, save.Version, save.SavedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprint(stdout, indent(state.Summary(save.State)))
	}
	return failed
}

func validateFile(filename string) (*storage.SaveFile, error) {
	if ext := filepath.Ext(filename); ext != ".json" {
		return nil, fmt.Errorf("save file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return storage.DecodeSave(data)
}

func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" || line == "\n" {
			b.WriteString(line)
			continue
		}
		b.WriteString("  ")
		b.WriteString(line)
	}
	return b.String()
}
