package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/chime/internal/domain"
)

// ListCmd lists the sounds of the configured source
type ListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// soundEntry is the JSON shape of a listed sound
type soundEntry struct {
	Extension string `json:"extension"`
	ID        string `json:"id"`
	Name      string `json:"name"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	sounds, err := cli.Container.Source.List()
	if err != nil {
		return fmt.Errorf("failed to list sounds: %w", err)
	}

	if l.Format == "json" {
		return l.printJSON(sounds)
	}
	return l.printTable(sounds, cli.Container.SourceName)
}

func (l *ListCmd) printJSON(sounds []domain.Descriptor) error {
	entries := make([]soundEntry, 0, len(sounds))
	for _, d := range sounds {
		entries = append(entries, soundEntry{Extension: d.Extension, ID: d.ID(), Name: d.Name})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (l *ListCmd) printTable(sounds []domain.Descriptor, sourceName string) error {
	fmt.Printf("Sounds from %s\n\n", sourceName)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOUND\tNAME\tFORMAT")
	for _, d := range sounds {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID(), d.Name, d.Extension)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d sounds\n", len(sounds))
	return nil
}
