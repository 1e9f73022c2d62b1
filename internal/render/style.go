package render

import "resume-composer/internal/domain"

// style holds the presentational parameters a template selects. Templates
// only ever influence these numbers; content and ordering are fixed upstream.
type style struct {
	font    string
	accent  rgb
	muted   rgb
	name    float64
	section float64
	entry   float64
	body    float64
	// line height factor applied to font sizes
	leading    float64
	sectionGap float64
	centerName bool
	rule       bool
}

type rgb struct{ r, g, b int }

var styles = map[domain.Template]style{
	domain.TemplateModern: {
		font:    "Helvetica",
		accent:  rgb{31, 81, 153},
		muted:   rgb{95, 95, 95},
		name:    22, section: 13, entry: 11, body: 10,
		leading: 1.45, sectionGap: 14,
		centerName: true,
		rule:       true,
	},
	domain.TemplateClassic: {
		font:    "Times",
		accent:  rgb{0, 0, 0},
		muted:   rgb{80, 80, 80},
		name:    21, section: 13, entry: 11, body: 10.5,
		leading: 1.5, sectionGap: 16,
		centerName: true,
	},
	domain.TemplateCreative: {
		font:    "Helvetica",
		accent:  rgb{142, 36, 170},
		muted:   rgb{110, 110, 110},
		name:    24, section: 14, entry: 11.5, body: 10,
		leading: 1.5, sectionGap: 18,
		rule:    true,
	},
	domain.TemplateMinimal: {
		font:    "Helvetica",
		accent:  rgb{60, 60, 60},
		muted:   rgb{130, 130, 130},
		name:    18, section: 11.5, entry: 10.5, body: 9.5,
		leading: 1.4, sectionGap: 12,
	},
}

func styleFor(t domain.Template) style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[domain.TemplateModern]
}
