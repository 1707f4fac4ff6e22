package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdfread "github.com/ledongthuc/pdf"

	"eduassist-backend/internal/render"
)

const sampleContent = `## Introduction

Photosystem II is the first protein complex in the light-dependent
reactions of photosynthesis. It uses light energy to split **water**
into oxygen, protons and electrons.

## Practice Problems

1. Where in the chloroplast is photosystem II located?
2. What molecule is the terminal electron donor?
3. Why is the oxygen-evolving complex essential?

## Tips & Tricks

- Remember the mnemonic "water in, oxygen out".
- Draw the Z-scheme and label both photosystems.

## Additional Resources

- [Khan Academy: Photosynthesis](https://www.khanacademy.org/science/biology/photosynthesis-in-plants)
`

func main() {
	outPath := flag.String("out", "./out/sample_resource.pdf", "output path for generated PDF")
	flag.Parse()

	renderer := render.NewPDFRenderer()
	pdfBytes, err := renderer.Render("Explain photosystem II", sampleContent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, pdfBytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedPDF(pdfBytes); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s (%d bytes)\n", *outPath, len(pdfBytes))
}

// validateRenderedPDF reads the output back and checks the section headings
// survived layout.
func validateRenderedPDF(data []byte) error {
	reader, err := pdfread.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return fmt.Errorf("extract page %d: %w", i, err)
		}
		text.WriteString(content)
	}

	for _, heading := range []string{"Introduction", "Practice Problems", "Tips", "Additional Resources"} {
		if !strings.Contains(text.String(), heading) {
			return fmt.Errorf("missing heading %q in rendered output", heading)
		}
	}
	return nil
}
