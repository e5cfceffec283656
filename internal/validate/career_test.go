package validate

import (
	"strings"
	"testing"

	"github.com/sj-cantos/launchpad-jia/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrgID = "0b8f6a2e-7f3c-4a7c-9a1e-2f4d8c6b5a01"

func validPayload() map[string]any {
	return map[string]any{
		"jobTitle":     "Backend Engineer",
		"description":  "<p>Build APIs</p>",
		"location":     "Manila",
		"workSetup":    "Hybrid",
		"lastEditedBy": "Recruiting Team",
		"createdBy":    map[string]any{"name": "A", "email": "a@x.com"},
		"questions": []any{
			map[string]any{"category": "Tech", "questions": []any{"Explain REST"}},
		},
		"orgID": testOrgID,
	}
}

func TestCareerPayloadHappyPath(t *testing.T) {
	payload := validPayload()
	payload["description"] = `<p>Build APIs</p><script>alert(1)</script>`

	career, err := CareerPayload(payload)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", career.JobTitle)
	assert.Equal(t, "<p>Build APIs</p>", career.Description, "script tag and body must be removed")
	assert.Equal(t, "Manila", career.Location)
	assert.Equal(t, model.StatusActive, career.Status, "status defaults to active")
	assert.Equal(t, "A", career.CreatedBy.Name)
	assert.Equal(t, "Recruiting Team", career.LastEditedBy.Name)
	require.Len(t, career.Questions, 1)
	assert.Equal(t, "Tech", career.Questions[0].Category)
	assert.Equal(t, []string{"Explain REST"}, career.Questions[0].Questions)
	assert.Nil(t, career.MinimumSalary)
	assert.Nil(t, career.MaximumSalary)
	assert.Equal(t, testOrgID, career.OrgID)
}

func TestCareerPayloadLegacyShapes(t *testing.T) {
	payload := validPayload()
	payload["questions"] = []any{"Explain REST", "Describe a race condition"}
	payload["createdBy"] = "Jane Recruiter"

	career, err := CareerPayload(payload)
	require.NoError(t, err)

	require.Len(t, career.Questions, 1, "flat question list folds into one group")
	assert.Empty(t, career.Questions[0].Category)
	assert.Equal(t, []string{"Explain REST", "Describe a race condition"}, career.Questions[0].Questions)
	assert.Equal(t, "Jane Recruiter", career.CreatedBy.Name)
}

func TestCareerPayloadFailFast(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr string
	}{
		{
			"missing title",
			func(p map[string]any) { delete(p, "jobTitle") },
			"Job title must be a string",
		},
		{
			"markup-only title",
			func(p map[string]any) { p["jobTitle"] = "<b></b>" },
			"Job title cannot be empty",
		},
		{
			"NaN salary string",
			func(p map[string]any) { p["minimumSalary"] = "nan" },
			"Minimum salary must be a valid number",
		},
		{
			"salary inversion",
			func(p map[string]any) { p["minimumSalary"] = 90000.0; p["maximumSalary"] = 50000.0 },
			"Minimum salary cannot be greater than maximum salary",
		},
		{
			"salary out of range",
			func(p map[string]any) { p["maximumSalary"] = 10000001.0 },
			"Maximum salary must not exceed 10000000",
		},
		{
			"bad status",
			func(p map[string]any) { p["status"] = "archived" },
			"Status must be 'active', 'inactive', or 'draft'",
		},
		{
			"bad work setup",
			func(p map[string]any) { p["workSetup"] = "from the moon" },
			"Work setup must be one of 'Fully Remote', 'Onsite', or 'Hybrid'",
		},
		{
			"non-boolean flag",
			func(p map[string]any) { p["requireVideo"] = "yes" },
			"Require video must be a boolean",
		},
		{
			"questions not an array",
			func(p map[string]any) { p["questions"] = "Explain REST" },
			"Questions must be an array",
		},
		{
			"empty questions",
			func(p map[string]any) { p["questions"] = []any{} },
			"At least one question is required",
		},
		{
			"missing orgID",
			func(p map[string]any) { delete(p, "orgID") },
			"Organization ID is required and must be a string",
		},
		{
			"malformed orgID",
			func(p map[string]any) { p["orgID"] = "not-a-uuid" },
			"Invalid organization ID format",
		},
		{
			"oversized secret prompt",
			func(p map[string]any) { p["cvSecretPrompt"] = strings.Repeat("a", 2001) },
			"CV secret prompt exceeds maximum length of 2000 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(payload)

			_, err := CareerPayload(payload)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCareerPayloadQuestionLimits(t *testing.T) {
	payload := validPayload()
	entries := make([]any, 51)
	for i := range entries {
		entries[i] = map[string]any{"category": "Tech", "questions": []any{"q"}}
	}
	payload["questions"] = entries

	_, err := CareerPayload(payload)
	require.Error(t, err)
	assert.Equal(t, "Maximum 50 questions allowed", err.Error())
}

func TestCareerPayloadAbsentSalaries(t *testing.T) {
	for _, absent := range []any{nil, ""} {
		payload := validPayload()
		payload["minimumSalary"] = absent
		payload["maximumSalary"] = absent

		career, err := CareerPayload(payload)
		require.NoError(t, err)
		assert.Nil(t, career.MinimumSalary)
		assert.Nil(t, career.MaximumSalary)
	}
}

func TestCareerPayloadSanitizesPlainFields(t *testing.T) {
	payload := validPayload()
	payload["jobTitle"] = `Backend <img src=x onerror=alert(1)> Engineer`
	payload["location"] = `<b>Manila</b>`

	career, err := CareerPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "Backend  Engineer", career.JobTitle)
	assert.Equal(t, "Manila", career.Location)
}

func TestCareerPayloadPreScreening(t *testing.T) {
	payload := validPayload()
	payload["preScreeningQuestions"] = []any{
		"Are you legally allowed to work here?",
		map[string]any{
			"question": "Which shifts can you take?",
			"type":     "checkboxes",
			"required": true,
			"options":  []any{"Day", "Night"},
		},
		map[string]any{
			"question":   "Expected salary?",
			"type":       "range",
			"rangeMin":   30000.0,
			"rangeMax":   60000.0,
			"rangeLabel": "PHP",
		},
	}

	career, err := CareerPayload(payload)
	require.NoError(t, err)
	require.Len(t, career.PreScreeningQuestions, 3)

	assert.Equal(t, model.PreScreenTypeShortAnswer, career.PreScreeningQuestions[0].Type)
	assert.Equal(t, []string{"Day", "Night"}, career.PreScreeningQuestions[1].Options)
	assert.True(t, career.PreScreeningQuestions[1].Required)
	require.NotNil(t, career.PreScreeningQuestions[2].RangeMin)
	assert.Equal(t, 30000.0, *career.PreScreeningQuestions[2].RangeMin)
	assert.Equal(t, "PHP", career.PreScreeningQuestions[2].RangeLabel)
}

func TestCareerPayloadPreScreeningStrict(t *testing.T) {
	tests := []struct {
		name    string
		entry   any
		wantErr string
	}{
		{"numeric entry", 42.0, "Pre-screening question 1 must be a string or an object"},
		{
			"unsupported type",
			map[string]any{"question": "q", "type": "essay"},
			`Pre-screening question 1 has an unsupported type "essay"`,
		},
		{
			"dropdown without options",
			map[string]any{"question": "q", "type": "dropdown"},
			"Pre-screening question 1 requires at least one option",
		},
		{
			"inverted range",
			map[string]any{"question": "q", "type": "range", "rangeMin": 10.0, "rangeMax": 5.0},
			"Pre-screening range minimum cannot be greater than maximum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			payload["preScreeningQuestions"] = []any{tt.entry}

			_, err := CareerPayload(payload)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
