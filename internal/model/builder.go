package model

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-composer/internal/domain"
)

// Provenance records where a candidate came from. The original prompt is
// retained on the resume when it was AI-generated.
type Provenance struct {
	AIGenerated bool
	AIPrompt    string
}

// Builder is the single gate through which every resume is constructed,
// whether the candidate came from the generation adapter or straight from a
// user. It validates the full document and reports every violation at once.
type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

// sections lists the top-level keys the builder understands. Anything else
// coming back from the provider is dropped rather than rejected.
var sections = map[string]bool{
	"personalInfo":   true,
	"experience":     true,
	"education":      true,
	"skills":         true,
	"projects":       true,
	"certifications": true,
	"accessibility":  true,
}

// Intermediate decode targets keep dates as raw strings so the validation
// pass can report a precise field path for every bad date.
type document struct {
	PersonalInfo   domain.PersonalInfo   `json:"personalInfo"`
	Experience     []experienceIn        `json:"experience"`
	Education      []educationIn         `json:"education"`
	Skills         domain.Skills         `json:"skills"`
	Projects       []projectIn           `json:"projects"`
	Certifications []certificationIn     `json:"certifications"`
	Accessibility  *domain.Accessibility `json:"accessibility"`
}

type experienceIn struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Skills       []string `json:"skills"`
}

type educationIn struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	GPA         string   `json:"gpa"`
	Honors      []string `json:"honors"`
}

type projectIn struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

type certificationIn struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	ExpiryDate string `json:"expiryDate"`
	Link       string `json:"link"`
}

// Build validates and normalizes a raw candidate into a Resume. On failure
// the returned error is a schema violation carrying the complete list of
// offending fields, never just the first one found.
func (b *Builder) Build(candidate map[string]interface{}, owner uuid.UUID, tpl domain.Template, prov Provenance) (*domain.Resume, error) {
	if candidate == nil {
		return nil, domain.NewSchemaViolation([]domain.FieldError{{Field: "document", Message: "document body is missing"}})
	}

	doc := normalize(candidate)

	shapeErrs, err := validateShape(doc)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if len(shapeErrs) > 0 {
		return nil, domain.NewSchemaViolation(shapeErrs)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode candidate: %w", err)
	}
	var in document
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, domain.NewSchemaViolation([]domain.FieldError{{Field: "document", Message: err.Error()}})
	}

	v := &validator{}
	resume := &domain.Resume{
		ID:          uuid.New(),
		UserID:      owner,
		Template:    tpl,
		AIGenerated: prov.AIGenerated,
		IsActive:    true,
	}
	if prov.AIGenerated {
		resume.AIPrompt = prov.AIPrompt
	}

	if _, ok := domain.ParseTemplate(string(tpl)); !ok || tpl == "" {
		v.add("template", fmt.Sprintf("unknown template %q", string(tpl)))
	}

	resume.PersonalInfo = v.personalInfo(in.PersonalInfo)
	for i, e := range in.Experience {
		resume.Experience = append(resume.Experience, v.experience(i, e))
	}
	for i, e := range in.Education {
		resume.Education = append(resume.Education, v.education(i, e))
	}
	resume.Skills = domain.Skills{
		Technical: trimList(in.Skills.Technical),
		Soft:      trimList(in.Skills.Soft),
		Languages: trimList(in.Skills.Languages),
	}
	for i, p := range in.Projects {
		resume.Projects = append(resume.Projects, v.project(i, p))
	}
	for i, c := range in.Certifications {
		resume.Certifications = append(resume.Certifications, v.certification(i, c))
	}
	resume.Accessibility = in.Accessibility

	if len(v.errs) > 0 {
		return nil, domain.NewSchemaViolation(v.errs)
	}

	now := time.Now().UTC()
	resume.CreatedAt = now
	resume.UpdatedAt = now
	return resume, nil
}

type validator struct {
	errs []domain.FieldError
}

func (v *validator) add(field, msg string) {
	v.errs = append(v.errs, domain.FieldError{Field: field, Message: msg})
}

func (v *validator) require(field, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		v.add(field, "is required")
	}
	return s
}

// date parses a raw date string. Required empty dates and unparseable values
// are both recorded against the exact field path.
func (v *validator) date(field, s string, required bool) *domain.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		if required {
			v.add(field, "is required")
		}
		return nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		v.add(field, "must be a date (YYYY, YYYY-MM or YYYY-MM-DD)")
		return nil
	}
	return &d
}

func (v *validator) personalInfo(in domain.PersonalInfo) domain.PersonalInfo {
	out := domain.PersonalInfo{
		FullName: v.require("personalInfo.fullName", in.FullName),
		Email:    v.require("personalInfo.email", in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
		LinkedIn: strings.TrimSpace(in.LinkedIn),
		Website:  strings.TrimSpace(in.Website),
		Summary:  strings.TrimSpace(in.Summary),
	}
	if out.Email != "" {
		if _, err := mail.ParseAddress(out.Email); err != nil {
			v.add("personalInfo.email", "must be a valid email address")
		}
	}
	return out
}

func (v *validator) experience(i int, in experienceIn) domain.Experience {
	path := fmt.Sprintf("experience[%d]", i)
	out := domain.Experience{
		Company:      strings.TrimSpace(in.Company),
		Position:     v.require(path+".position", in.Position),
		Current:      in.Current,
		Description:  strings.TrimSpace(in.Description),
		Achievements: trimList(in.Achievements),
		Skills:       trimList(in.Skills),
	}
	if d := v.date(path+".startDate", in.StartDate, true); d != nil {
		out.StartDate = *d
	}
	out.EndDate = v.date(path+".endDate", in.EndDate, !in.Current)
	if !in.Current && out.EndDate != nil && !out.StartDate.IsZero() && out.EndDate.Before(out.StartDate.Time) {
		v.add(path+".endDate", "must not precede startDate")
	}
	return out
}

func (v *validator) education(i int, in educationIn) domain.Education {
	path := fmt.Sprintf("education[%d]", i)
	out := domain.Education{
		Institution: strings.TrimSpace(in.Institution),
		Degree:      v.require(path+".degree", in.Degree),
		Field:       strings.TrimSpace(in.Field),
		GPA:         strings.TrimSpace(in.GPA),
		Honors:      trimList(in.Honors),
	}
	if d := v.date(path+".startDate", in.StartDate, true); d != nil {
		out.StartDate = *d
	}
	out.EndDate = v.date(path+".endDate", in.EndDate, false)
	return out
}

func (v *validator) project(i int, in projectIn) domain.Project {
	path := fmt.Sprintf("projects[%d]", i)
	return domain.Project{
		Name:         v.require(path+".name", in.Name),
		Description:  strings.TrimSpace(in.Description),
		Technologies: trimList(in.Technologies),
		Link:         strings.TrimSpace(in.Link),
		StartDate:    v.date(path+".startDate", in.StartDate, false),
		EndDate:      v.date(path+".endDate", in.EndDate, false),
	}
}

func (v *validator) certification(i int, in certificationIn) domain.Certification {
	path := fmt.Sprintf("certifications[%d]", i)
	return domain.Certification{
		Name:       v.require(path+".name", in.Name),
		Issuer:     strings.TrimSpace(in.Issuer),
		Date:       v.date(path+".date", in.Date, false),
		ExpiryDate: v.date(path+".expiryDate", in.ExpiryDate, false),
		Link:       strings.TrimSpace(in.Link),
	}
}

func trimList(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// normalize keeps only the known top-level sections and coerces the
// near-miss value shapes providers commonly emit: numeric years and GPAs
// become strings so the structural pass and decode don't trip over them.
func normalize(candidate map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(sections))
	for k, val := range candidate {
		if sections[k] {
			out[k] = val
		}
	}

	dateKeys := map[string]bool{"startDate": true, "endDate": true, "date": true, "expiryDate": true}
	coerce := func(entry map[string]interface{}, numeric map[string]bool) {
		for k, val := range entry {
			if n, ok := val.(float64); ok && numeric[k] {
				entry[k] = fmt.Sprintf("%.0f", n)
			}
		}
	}
	for _, section := range []string{"experience", "education", "projects", "certifications"} {
		arr, ok := out[section].([]interface{})
		if !ok {
			continue
		}
		for _, item := range arr {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			coerce(entry, dateKeys)
			if n, ok := entry["gpa"].(float64); ok {
				entry["gpa"] = fmt.Sprintf("%g", n)
			}
		}
	}
	return out
}
