package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Template selects typography, accents and spacing at emission time. It never
// changes which sections render or in what order.
type Template string

const (
	TemplateModern   Template = "modern"
	TemplateClassic  Template = "classic"
	TemplateCreative Template = "creative"
	TemplateMinimal  Template = "minimal"
)

// ParseTemplate maps a wire string to a Template. The empty string selects
// the default; anything else unknown is rejected, never silently defaulted.
func ParseTemplate(s string) (Template, bool) {
	switch t := Template(strings.TrimSpace(s)); t {
	case "":
		return TemplateModern, true
	case TemplateModern, TemplateClassic, TemplateCreative, TemplateMinimal:
		return t, true
	default:
		return "", false
	}
}

// Date is a calendar date that tolerates the partial shapes generative
// providers tend to emit: YYYY, YYYY-MM, YYYY-MM-DD and full RFC3339.
// Partial dates widen to the first day of the period.
type Date struct {
	time.Time
}

var dateLayouts = []string{"2006-01-02", "2006-01", "2006", time.RFC3339}

// ParseDate parses s using the accepted layouts.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t.UTC()}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

type Experience struct {
	Company      string   `json:"company,omitempty"`
	Position     string   `json:"position"`
	StartDate    Date     `json:"startDate"`
	EndDate      *Date    `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

type Education struct {
	Institution string   `json:"institution,omitempty"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field,omitempty"`
	StartDate   Date     `json:"startDate"`
	EndDate     *Date    `json:"endDate,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      []string `json:"honors,omitempty"`
}

type Skills struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// Empty reports whether no sub-category holds any entries.
func (s Skills) Empty() bool {
	return len(s.Technical) == 0 && len(s.Soft) == 0 && len(s.Languages) == 0
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
	StartDate    *Date    `json:"startDate,omitempty"`
	EndDate      *Date    `json:"endDate,omitempty"`
}

type Certification struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer,omitempty"`
	Date       *Date  `json:"date,omitempty"`
	ExpiryDate *Date  `json:"expiryDate,omitempty"`
	Link       string `json:"link,omitempty"`
}

// Accessibility is carried through verbatim; the core never interprets it.
type Accessibility struct {
	DisabilityType           string   `json:"disabilityType,omitempty"`
	Accommodations           []string `json:"accommodations,omitempty"`
	AccessibilityPreferences []string `json:"accessibilityPreferences,omitempty"`
}

// Resume is the canonical validated document. Instances are only produced by
// the model builder; array ordering is insertion order and is preserved all
// the way to emission.
type Resume struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         Skills          `json:"skills"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Accessibility  *Accessibility  `json:"accessibility,omitempty"`
	Template       Template        `json:"template"`
	AIGenerated    bool            `json:"aiGenerated"`
	AIPrompt       string          `json:"aiPrompt,omitempty"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
