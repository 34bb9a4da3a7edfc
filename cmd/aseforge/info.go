package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/aseforge/pkg/ase"
)

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: aseforge info <doc.json>")
		os.Exit(1)
	}

	doc, err := ase.LoadDocument(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Document: %s\n", doc.Name)
	fmt.Printf("Canvas:   %dx%d\n", doc.Width, doc.Height)
	fmt.Printf("Frames:   %d\n", len(doc.Frames))
	fmt.Println()

	fmt.Println("Layers:")
	for i := range doc.Layers {
		l := &doc.Layers[i]
		marks := ""
		if !l.Visible {
			marks += " hidden"
		}
		if l.Background {
			marks += " background"
		}
		fmt.Printf("  %-20s opacity %3d blend %2d%s\n", l.Name, l.Opacity, l.Mode, marks)
	}

	if len(doc.Tags) > 0 {
		fmt.Println()
		fmt.Println("Tags:")
		for _, tag := range doc.Tags {
			frames := tag.To - tag.From + 1
			ms := 0
			for i := tag.From; i <= tag.To && i < len(doc.Frames); i++ {
				ms += doc.Frames[i].DurationMs
			}
			fmt.Printf("  %-20s frames %d-%d (%d frames, %d ms)\n",
				tag.Name, tag.From+1, tag.To+1, frames, ms)
		}
	}
}
