package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/internal/domain"
)

func validCandidate() map[string]interface{} {
	return map[string]interface{}{
		"personalInfo": map[string]interface{}{
			"fullName": "  Jane Doe  ",
			"email":    "jane@example.com",
			"phone":    "+1 555 0100",
			"summary":  "Frontend engineer with a focus on React.",
		},
		"experience": []interface{}{
			map[string]interface{}{
				"company":      "Acme",
				"position":     "Frontend Engineer",
				"startDate":    "2021-01-01",
				"current":      true,
				"achievements": []interface{}{"Led a 2-person team", "  "},
				"skills":       []interface{}{"React", "TypeScript"},
			},
		},
		"education": []interface{}{
			map[string]interface{}{
				"institution": "State University",
				"degree":      "BSc",
				"field":       "Computer Science",
				"startDate":   "2014",
				"endDate":     "2018",
				"gpa":         3.8,
			},
		},
		"skills": map[string]interface{}{
			"technical": []interface{}{"Go", "React"},
			"languages": []interface{}{"English"},
		},
		"projects": []interface{}{
			map[string]interface{}{"name": "Portfolio", "link": "https://janedoe.dev"},
		},
		"certifications": []interface{}{
			map[string]interface{}{"name": "CKA", "issuer": "CNCF", "date": "2023-05"},
		},
	}
}

func fields(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, domain.KindSchemaViolation, domain.KindOf(err))
	var names []string
	for _, f := range domain.FieldsOf(err) {
		names = append(names, f.Field)
	}
	return names
}

func TestBuildValidCandidate(t *testing.T) {
	owner := uuid.New()
	b := NewBuilder()

	resume, err := b.Build(validCandidate(), owner, domain.TemplateModern, Provenance{AIGenerated: true, AIPrompt: "Frontend engineer, 3 years, React"})
	require.NoError(t, err)

	assert.Equal(t, owner, resume.UserID)
	assert.Equal(t, "Jane Doe", resume.PersonalInfo.FullName, "strings are trimmed")
	assert.Equal(t, domain.TemplateModern, resume.Template)
	assert.True(t, resume.AIGenerated)
	assert.Equal(t, "Frontend engineer, 3 years, React", resume.AIPrompt)
	assert.True(t, resume.IsActive)
	assert.NotEqual(t, uuid.Nil, resume.ID)

	require.Len(t, resume.Experience, 1)
	assert.True(t, resume.Experience[0].Current)
	assert.Equal(t, "2021-01-01", resume.Experience[0].StartDate.Format("2006-01-02"))
	assert.Equal(t, []string{"Led a 2-person team"}, resume.Experience[0].Achievements, "blank items dropped, order kept")

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "3.8", resume.Education[0].GPA, "numeric gpa coerced")
	assert.Equal(t, "2014-01-01", resume.Education[0].StartDate.Format("2006-01-02"), "year-only date widened")

	require.Len(t, resume.Certifications, 1)
	require.NotNil(t, resume.Certifications[0].Date)
	assert.Equal(t, "2023-05-01", resume.Certifications[0].Date.Format("2006-01-02"))
}

func TestBuildDropsUnknownTopLevelKeys(t *testing.T) {
	candidate := validCandidate()
	candidate["snapshot"] = map[string]interface{}{"tech": "Go"}
	candidate["_meta"] = "provider noise"

	_, err := NewBuilder().Build(candidate, uuid.New(), domain.TemplateModern, Provenance{})
	assert.NoError(t, err)
}

func TestBuildCollectsAllViolations(t *testing.T) {
	candidate := validCandidate()
	pi := candidate["personalInfo"].(map[string]interface{})
	pi["fullName"] = "   "
	candidate["experience"] = []interface{}{
		map[string]interface{}{
			"company":   "Acme",
			"position":  "Engineer",
			"startDate": "2022-01-01",
			"endDate":   "2020-01-01",
			"current":   false,
		},
	}
	candidate["projects"] = []interface{}{map[string]interface{}{"description": "no name"}}

	got := fields(t, errFromBuild(t, candidate))
	assert.Contains(t, got, "personalInfo.fullName")
	assert.Contains(t, got, "experience[0].endDate")
	assert.Contains(t, got, "projects[0].name")
}

func TestBuildMissingFullNameOnly(t *testing.T) {
	candidate := validCandidate()
	delete(candidate["personalInfo"].(map[string]interface{}), "fullName")

	got := fields(t, errFromBuild(t, candidate))
	assert.Equal(t, []string{"personalInfo.fullName"}, got, "valid fields must not be reported")
}

func TestBuildEndDateRules(t *testing.T) {
	t.Run("current entry needs no endDate", func(t *testing.T) {
		candidate := validCandidate()
		candidate["experience"] = []interface{}{
			map[string]interface{}{"position": "Engineer", "startDate": "2021-01-01", "current": true},
		}
		_, err := NewBuilder().Build(candidate, uuid.New(), domain.TemplateModern, Provenance{})
		assert.NoError(t, err)
	})

	t.Run("finished entry requires endDate", func(t *testing.T) {
		candidate := validCandidate()
		candidate["experience"] = []interface{}{
			map[string]interface{}{"position": "Engineer", "startDate": "2021-01-01", "current": false},
		}
		got := fields(t, errFromBuild(t, candidate))
		assert.Equal(t, []string{"experience[0].endDate"}, got)
	})

	t.Run("endDate before startDate is an error, not a correction", func(t *testing.T) {
		candidate := validCandidate()
		candidate["experience"] = []interface{}{
			map[string]interface{}{"position": "Engineer", "startDate": "2021-06-01", "endDate": "2021-01-01", "current": false},
		}
		got := fields(t, errFromBuild(t, candidate))
		assert.Equal(t, []string{"experience[0].endDate"}, got)
	})
}

func TestBuildRejectsBadEmailAndDates(t *testing.T) {
	candidate := validCandidate()
	candidate["personalInfo"].(map[string]interface{})["email"] = "not-an-email"
	candidate["certifications"] = []interface{}{
		map[string]interface{}{"name": "CKA", "date": "last spring"},
	}

	got := fields(t, errFromBuild(t, candidate))
	assert.Contains(t, got, "personalInfo.email")
	assert.Contains(t, got, "certifications[0].date")
}

func TestBuildRejectsUnknownTemplate(t *testing.T) {
	_, err := NewBuilder().Build(validCandidate(), uuid.New(), domain.Template("fancy"), Provenance{})
	got := fields(t, err)
	assert.Equal(t, []string{"template"}, got)
}

func TestBuildRejectsWrongShapes(t *testing.T) {
	candidate := validCandidate()
	candidate["experience"] = "three years at Acme"

	err := errFromBuild(t, candidate)
	require.Equal(t, domain.KindSchemaViolation, domain.KindOf(err))
	require.NotEmpty(t, domain.FieldsOf(err))
}

func TestBuildNilCandidate(t *testing.T) {
	_, err := NewBuilder().Build(nil, uuid.New(), domain.TemplateModern, Provenance{})
	got := fields(t, err)
	assert.Equal(t, []string{"document"}, got)
}

func TestBuildPreservesEntryOrder(t *testing.T) {
	candidate := validCandidate()
	candidate["projects"] = []interface{}{
		map[string]interface{}{"name": "Zeta"},
		map[string]interface{}{"name": "Alpha"},
		map[string]interface{}{"name": "Mid"},
	}

	resume, err := NewBuilder().Build(candidate, uuid.New(), domain.TemplateModern, Provenance{})
	require.NoError(t, err)
	require.Len(t, resume.Projects, 3)
	assert.Equal(t, "Zeta", resume.Projects[0].Name)
	assert.Equal(t, "Alpha", resume.Projects[1].Name)
	assert.Equal(t, "Mid", resume.Projects[2].Name)
}

func errFromBuild(t *testing.T, candidate map[string]interface{}) error {
	t.Helper()
	_, err := NewBuilder().Build(candidate, uuid.New(), domain.TemplateModern, Provenance{})
	return err
}
