package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/internal/domain"
)

func emitBytes(t *testing.T, blocks []Block, tpl domain.Template) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Emit(blocks, tpl, &buf))
	return buf.Bytes()
}

// gofpdf writes "/Type /Page" per page plus one "/Type /Pages" tree node.
func pageCount(b []byte) int {
	s := string(b)
	return strings.Count(s, "/Type /Page") - strings.Count(s, "/Type /Pages")
}

func TestEmitProducesPDF(t *testing.T) {
	out := emitBytes(t, Render(fullResume(t)), domain.TemplateModern)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, 1, pageCount(out))
}

func TestEmitIsDeterministic(t *testing.T) {
	blocks := Render(fullResume(t))
	first := emitBytes(t, blocks, domain.TemplateModern)
	second := emitBytes(t, blocks, domain.TemplateModern)
	assert.Equal(t, first, second, "identical input must yield byte-identical output")
}

func TestEmitBreaksPagesOnVolume(t *testing.T) {
	blocks := []Block{Heading{Level: 1, Text: "Jane Doe"}}
	for i := 0; i < 60; i++ {
		blocks = append(blocks,
			Heading{Level: 3, Text: fmt.Sprintf("Role %d", i)},
			Paragraph{Text: "Responsible for a long-running stream of projects that wraps across several lines when flowed into the fixed page width of an A4 document with uniform margins."},
			BulletList{Items: []string{"Shipped the thing", "Measured the thing"}},
		)
	}

	out := emitBytes(t, blocks, domain.TemplateClassic)
	assert.Greater(t, pageCount(out), 1, "content volume alone drives page breaks")
}

func TestEmitTemplatesDiffer(t *testing.T) {
	blocks := Render(fullResume(t))
	outputs := map[domain.Template][]byte{}
	for _, tpl := range []domain.Template{domain.TemplateModern, domain.TemplateClassic, domain.TemplateCreative, domain.TemplateMinimal} {
		outputs[tpl] = emitBytes(t, blocks, tpl)
	}

	assert.NotEqual(t, outputs[domain.TemplateModern], outputs[domain.TemplateClassic])
	assert.NotEqual(t, outputs[domain.TemplateCreative], outputs[domain.TemplateMinimal])
}

type bogusBlock struct{}

func (bogusBlock) isBlock() {}

func TestEmitUnknownBlockIsRenderFailure(t *testing.T) {
	var buf bytes.Buffer
	err := Emit([]Block{Heading{Level: 1, Text: "Jane"}, bogusBlock{}}, domain.TemplateModern, &buf)
	assert.Equal(t, domain.KindRenderFailure, domain.KindOf(err))
}

func TestRenderHTMLContainsBlocks(t *testing.T) {
	html, err := RenderHTML(Render(fullResume(t)), domain.TemplateModern)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Jane Doe</h1>")
	assert.Contains(t, html, "<h2>Experience</h2>")
	assert.Contains(t, html, "<li>Led a 2-person team</li>")
	assert.Contains(t, html, "<b>Technical:</b> Go, React")
}
