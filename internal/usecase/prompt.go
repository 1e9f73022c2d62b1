package usecase

// The instruction block states the exact target shape and demands bare JSON.
// Providers still wrap output in prose or code fences often enough that the
// adapter additionally extracts the outermost JSON object before parsing.
const promptInstructions = `You will produce EXACTLY one JSON object and NOTHING ELSE. No commentary, no Markdown, no code fences. Output must be valid JSON only.

The object describes a professional resume extracted from the free-text background below and must use exactly this structure (omit sections you have no information for):

{
  "personalInfo": {"fullName": "NAME", "email": "x@example.com", "phone": "", "address": "", "linkedin": "", "website": "", "summary": ""},
  "experience": [{"company": "Org", "position": "Role", "startDate": "YYYY-MM-DD", "endDate": "YYYY-MM-DD", "current": false, "description": "", "achievements": ["..."], "skills": ["..."]}],
  "education": [{"institution": "School", "degree": "Degree", "field": "", "startDate": "YYYY-MM-DD", "endDate": "YYYY-MM-DD", "gpa": "", "honors": ["..."]}],
  "skills": {"technical": ["..."], "soft": ["..."], "languages": ["..."]},
  "projects": [{"name": "Name", "description": "", "technologies": ["..."], "link": "", "startDate": "", "endDate": ""}],
  "certifications": [{"name": "Name", "issuer": "", "date": "YYYY-MM-DD", "expiryDate": "", "link": ""}]
}

Rules (enforce exactly):
 - personalInfo.fullName and personalInfo.email are required strings.
 - Every experience and education entry needs a startDate; use "current": true instead of an endDate for ongoing roles.
 - Dates are strings: YYYY, YYYY-MM or YYYY-MM-DD.
 - Do not invent employers or credentials that are not implied by the text; leave optional fields empty instead.

Professional background:
`

func buildPrompt(freeText string) string {
	return promptInstructions + freeText
}
