package render

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-composer/internal/domain"
)

// Block is one renderer-agnostic layout unit. Blocks carry no page position;
// pagination is the emitter's job.
type Block interface{ isBlock() }

type Heading struct {
	Level int
	Text  string
}

type Paragraph struct {
	Text string
}

type BulletList struct {
	Items []string
}

type KeyValueLine struct {
	Label string
	Value string
}

func (Heading) isBlock()      {}
func (Paragraph) isBlock()    {}
func (BulletList) isBlock()   {}
func (KeyValueLine) isBlock() {}

// Render maps a validated resume to an ordered block sequence. Section order
// is fixed regardless of template; empty sections are omitted entirely, and
// entry order within a section is the resume's insertion order.
func Render(r *domain.Resume) []Block {
	var blocks []Block

	blocks = append(blocks, Heading{Level: 1, Text: r.PersonalInfo.FullName})
	if contact := contactLine(r.PersonalInfo); contact != "" {
		blocks = append(blocks, Paragraph{Text: contact})
	}

	if r.PersonalInfo.Summary != "" {
		blocks = append(blocks, Heading{Level: 2, Text: "Summary"})
		blocks = append(blocks, Paragraph{Text: r.PersonalInfo.Summary})
	}

	if len(r.Experience) > 0 {
		blocks = append(blocks, Heading{Level: 2, Text: "Experience"})
		for _, e := range r.Experience {
			blocks = append(blocks, experienceBlocks(e)...)
		}
	}

	if len(r.Education) > 0 {
		blocks = append(blocks, Heading{Level: 2, Text: "Education"})
		for _, e := range r.Education {
			blocks = append(blocks, educationBlocks(e)...)
		}
	}

	if !r.Skills.Empty() {
		blocks = append(blocks, Heading{Level: 2, Text: "Skills"})
		for _, kv := range []KeyValueLine{
			{Label: "Technical", Value: strings.Join(r.Skills.Technical, ", ")},
			{Label: "Soft", Value: strings.Join(r.Skills.Soft, ", ")},
			{Label: "Languages", Value: strings.Join(r.Skills.Languages, ", ")},
		} {
			if kv.Value != "" {
				blocks = append(blocks, kv)
			}
		}
	}

	if len(r.Projects) > 0 {
		blocks = append(blocks, Heading{Level: 2, Text: "Projects"})
		for _, p := range r.Projects {
			blocks = append(blocks, projectBlocks(p)...)
		}
	}

	if len(r.Certifications) > 0 {
		blocks = append(blocks, Heading{Level: 2, Text: "Certifications"})
		for _, c := range r.Certifications {
			blocks = append(blocks, certificationBlocks(c)...)
		}
	}

	return blocks
}

func contactLine(p domain.PersonalInfo) string {
	var parts []string
	for _, s := range []string{p.Email, p.Phone, p.Address, p.LinkedIn, p.Website} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}

func experienceBlocks(e domain.Experience) []Block {
	title := e.Position
	if e.Company != "" {
		title = fmt.Sprintf("%s at %s", e.Position, e.Company)
	}
	blocks := []Block{
		Heading{Level: 3, Text: title},
		Paragraph{Text: dateRange(e.StartDate, e.EndDate, e.Current)},
	}
	if e.Description != "" {
		blocks = append(blocks, Paragraph{Text: e.Description})
	}
	if len(e.Achievements) > 0 {
		blocks = append(blocks, BulletList{Items: e.Achievements})
	}
	if len(e.Skills) > 0 {
		blocks = append(blocks, KeyValueLine{Label: "Skills", Value: strings.Join(e.Skills, ", ")})
	}
	return blocks
}

func educationBlocks(e domain.Education) []Block {
	title := e.Degree
	if e.Field != "" {
		title = fmt.Sprintf("%s in %s", e.Degree, e.Field)
	}
	blocks := []Block{Heading{Level: 3, Text: title}}
	if e.Institution != "" {
		blocks = append(blocks, Paragraph{Text: e.Institution})
	}
	blocks = append(blocks, Paragraph{Text: dateRange(e.StartDate, e.EndDate, false)})
	if e.GPA != "" {
		blocks = append(blocks, KeyValueLine{Label: "GPA", Value: e.GPA})
	}
	if len(e.Honors) > 0 {
		blocks = append(blocks, BulletList{Items: e.Honors})
	}
	return blocks
}

func projectBlocks(p domain.Project) []Block {
	blocks := []Block{Heading{Level: 3, Text: p.Name}}
	if p.Description != "" {
		blocks = append(blocks, Paragraph{Text: p.Description})
	}
	if len(p.Technologies) > 0 {
		blocks = append(blocks, KeyValueLine{Label: "Technologies", Value: strings.Join(p.Technologies, ", ")})
	}
	if p.Link != "" {
		blocks = append(blocks, KeyValueLine{Label: "Link", Value: p.Link})
	}
	return blocks
}

func certificationBlocks(c domain.Certification) []Block {
	blocks := []Block{Heading{Level: 3, Text: c.Name}}
	if c.Issuer != "" {
		blocks = append(blocks, Paragraph{Text: c.Issuer})
	}
	if c.Date != nil {
		blocks = append(blocks, Paragraph{Text: c.Date.Format("January 2, 2006")})
	}
	if c.Link != "" {
		blocks = append(blocks, KeyValueLine{Label: "Link", Value: linkLabel(c.Link)})
	}
	return blocks
}

// dateRange renders "{startYear} - {Present|endYear}". A current entry shows
// Present even when an endDate slipped through; an open-ended education
// range shows the start year alone.
func dateRange(start domain.Date, end *domain.Date, current bool) string {
	if current {
		return fmt.Sprintf("%d - Present", start.Year())
	}
	if end == nil {
		return fmt.Sprintf("%d", start.Year())
	}
	return fmt.Sprintf("%d - %d", start.Year(), end.Year())
}

// linkLabel reduces a URL to its registrable domain for a tidy printed
// label, falling back to the hostname and then to the raw string.
func linkLabel(link string) string {
	candidate := link
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return link
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
