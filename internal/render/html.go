package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"resume-composer/internal/domain"
)

// The HTML path exists for the optional high-fidelity preview backend; the
// document structure is the same block sequence the PDF emitter consumes.
//
//go:embed preview.html
var previewHTML string

var previewTpl = template.Must(template.New("preview").Parse(previewHTML))

type htmlBlock struct {
	Kind  string
	Level int
	Text  string
	Items []string
	Label string
	Value string
}

type htmlDoc struct {
	Font       string
	Accent     template.CSS
	CenterName bool
	Blocks     []htmlBlock
}

// RenderHTML renders the block sequence as a standalone HTML document with
// the template's style parameters inlined.
func RenderHTML(blocks []Block, tpl domain.Template) (string, error) {
	st := styleFor(tpl)
	doc := htmlDoc{
		Font:       st.font,
		Accent:     template.CSS(fmt.Sprintf("rgb(%d,%d,%d)", st.accent.r, st.accent.g, st.accent.b)),
		CenterName: st.centerName,
	}
	for _, b := range blocks {
		switch blk := b.(type) {
		case Heading:
			doc.Blocks = append(doc.Blocks, htmlBlock{Kind: "heading", Level: blk.Level, Text: blk.Text})
		case Paragraph:
			doc.Blocks = append(doc.Blocks, htmlBlock{Kind: "paragraph", Text: blk.Text})
		case BulletList:
			doc.Blocks = append(doc.Blocks, htmlBlock{Kind: "bullets", Items: blk.Items})
		case KeyValueLine:
			doc.Blocks = append(doc.Blocks, htmlBlock{Kind: "keyvalue", Label: blk.Label, Value: blk.Value})
		default:
			return "", domain.NewRenderFailure(fmt.Errorf("unknown layout block %T", b))
		}
	}

	var buf bytes.Buffer
	if err := previewTpl.Execute(&buf, doc); err != nil {
		return "", domain.NewRenderFailure(err)
	}
	return buf.String(), nil
}
