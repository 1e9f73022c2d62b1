package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"resume-composer/internal/domain"
	"resume-composer/internal/model"
	"resume-composer/internal/render"
)

// Renders a resume document from a JSON file straight to PDF, for eyeballing
// template styles without the server or the provider.
//
//	go run ./tools resume.json modern out.pdf
func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: render_sample <document.json> <template> <out.pdf>")
		os.Exit(2)
	}

	b, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}
	var candidate map[string]interface{}
	if err := json.Unmarshal(b, &candidate); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	tpl, ok := domain.ParseTemplate(os.Args[2])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown template %q\n", os.Args[2])
		os.Exit(2)
	}

	resume, err := model.NewBuilder().Build(candidate, uuid.New(), tpl, model.Provenance{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(2)
	}

	f, err := os.Create(os.Args[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "create out: %v\n", err)
		os.Exit(2)
	}
	defer f.Close()

	if err := render.Emit(render.Render(resume), tpl, f); err != nil {
		fmt.Fprintf(os.Stderr, "emit: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", os.Args[3])
}
