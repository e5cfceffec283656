package validate

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sj-cantos/launchpad-jia/internal/sanitize"
	"github.com/sj-cantos/launchpad-jia/pkg/model"
)

const (
	maxQuestions         = 50
	maxQuestionLength    = 1000
	maxSalary            = 10000000
	maxDescriptionLength = 10000
)

var workSetups = map[string]bool{
	"remote":       true,
	"fully remote": true,
	"onsite":       true,
	"hybrid":       true,
}

var statuses = map[model.Status]bool{
	model.StatusActive:   true,
	model.StatusInactive: true,
	model.StatusDraft:    true,
}

var preScreenTypes = map[string]bool{
	model.PreScreenTypeDropdown:    true,
	model.PreScreenTypeShortAnswer: true,
	model.PreScreenTypeLongAnswer:  true,
	model.PreScreenTypeCheckboxes:  true,
	model.PreScreenTypeRange:       true,
}

// CareerPayload validates and sanitizes a raw career payload field by
// field, failing fast on the first violation. On success every field of
// the returned career has passed through the sanitizer, so no partially
// cleaned document can reach storage. Legacy payload shapes (flat
// question lists, string identities) are normalized here so the rest of
// the service only ever sees the structured form.
func CareerPayload(payload map[string]any) (*model.Career, error) {
	career := &model.Career{}

	jobTitle, err := String(payload["jobTitle"], "Job title", 200)
	if err != nil {
		return nil, err
	}
	career.JobTitle = sanitize.PlainTrimmed(jobTitle)
	if career.JobTitle == "" {
		return nil, errf("Job title cannot be empty")
	}

	description, err := String(payload["description"], "Description", maxDescriptionLength)
	if err != nil {
		return nil, err
	}
	career.Description = sanitize.Rich(description)

	location, err := String(payload["location"], "Location", 100)
	if err != nil {
		return nil, err
	}
	career.Location = sanitize.PlainTrimmed(location)

	workSetup, err := String(payload["workSetup"], "Work setup", 50)
	if err != nil {
		return nil, err
	}
	if !workSetups[strings.ToLower(workSetup)] {
		return nil, errf("Work setup must be one of 'Fully Remote', 'Onsite', or 'Hybrid'")
	}
	career.WorkSetup = sanitize.PlainTrimmed(workSetup)

	career.LastEditedBy, err = Actor(payload["lastEditedBy"], "Last edited by")
	if err != nil {
		return nil, err
	}

	career.CreatedBy, err = Actor(payload["createdBy"], "Created by")
	if err != nil {
		return nil, err
	}

	career.Questions, err = questionGroups(payload["questions"])
	if err != nil {
		return nil, err
	}

	career.WorkSetupRemarks, err = OptionalString(payload["workSetupRemarks"], "Work setup remarks", 500)
	if err != nil {
		return nil, err
	}
	career.WorkSetupRemarks = sanitize.PlainTrimmed(career.WorkSetupRemarks)

	status, err := OptionalString(payload["status"], "Status", 20)
	if err != nil {
		return nil, err
	}
	if status != "" {
		career.Status = model.Status(sanitize.PlainTrimmed(status))
		if !statuses[career.Status] {
			return nil, errf("Status must be 'active', 'inactive', or 'draft'")
		}
	} else {
		career.Status = model.StatusActive
	}

	career.Country, err = OptionalString(payload["country"], "Country", 100)
	if err != nil {
		return nil, err
	}
	career.Country = sanitize.PlainTrimmed(career.Country)

	career.Province, err = OptionalString(payload["province"], "Province", 100)
	if err != nil {
		return nil, err
	}
	career.Province = sanitize.PlainTrimmed(career.Province)

	career.EmploymentType, err = OptionalString(payload["employmentType"], "Employment type", 50)
	if err != nil {
		return nil, err
	}
	career.EmploymentType = sanitize.PlainTrimmed(career.EmploymentType)

	career.MinimumSalary, err = Number(payload["minimumSalary"], "Minimum salary", 0, maxSalary)
	if err != nil {
		return nil, err
	}
	career.MaximumSalary, err = Number(payload["maximumSalary"], "Maximum salary", 0, maxSalary)
	if err != nil {
		return nil, err
	}
	if career.MinimumSalary != nil && career.MaximumSalary != nil && *career.MinimumSalary > *career.MaximumSalary {
		return nil, errf("Minimum salary cannot be greater than maximum salary")
	}

	career.SalaryNegotiable, err = Bool(payload["salaryNegotiable"], "Salary negotiable")
	if err != nil {
		return nil, err
	}
	career.RequireVideo, err = Bool(payload["requireVideo"], "Require video")
	if err != nil {
		return nil, err
	}

	orgID, ok := payload["orgID"].(string)
	if !ok || orgID == "" {
		return nil, errf("Organization ID is required and must be a string")
	}
	if _, err := uuid.Parse(orgID); err != nil {
		return nil, errf("Invalid organization ID format")
	}
	career.OrgID = orgID

	screeningSetting, err := OptionalString(payload["screeningSetting"], "Screening setting", 100)
	if err != nil {
		return nil, err
	}
	career.ScreeningSetting = sanitize.PlainTrimmed(screeningSetting)

	career.CvSecretPrompt, err = OptionalString(payload["cvSecretPrompt"], "CV secret prompt", 2000)
	if err != nil {
		return nil, err
	}
	career.CvSecretPrompt = sanitize.PlainTrimmed(career.CvSecretPrompt)

	aiScreening, err := OptionalString(payload["aiInterviewScreening"], "AI interview screening", 100)
	if err != nil {
		return nil, err
	}
	career.AiInterviewScreening = sanitize.PlainTrimmed(aiScreening)

	career.AiSecretPrompt, err = OptionalString(payload["aiSecretPrompt"], "AI secret prompt", 2000)
	if err != nil {
		return nil, err
	}
	career.AiSecretPrompt = sanitize.PlainTrimmed(career.AiSecretPrompt)

	career.PreScreeningQuestions, err = preScreeningQuestions(payload["preScreeningQuestions"])
	if err != nil {
		return nil, err
	}

	return career, nil
}

// questionGroups accepts either the legacy flat list of question
// strings or the current list of category objects, and always returns
// category groups.
func questionGroups(v any) ([]model.QuestionGroup, error) {
	entries, ok := v.([]any)
	if !ok {
		return nil, errf("Questions must be an array")
	}
	if len(entries) == 0 {
		return nil, errf("At least one question is required")
	}
	if len(entries) > maxQuestions {
		return nil, errf("Maximum %d questions allowed", maxQuestions)
	}

	var flat []string
	var groups []model.QuestionGroup

	for i, entry := range entries {
		switch e := entry.(type) {
		case string:
			q, err := questionText(e, i)
			if err != nil {
				return nil, err
			}
			flat = append(flat, q)
		case map[string]any:
			group, err := questionGroup(e, i)
			if err != nil {
				return nil, err
			}
			groups = append(groups, group)
		default:
			return nil, errf("Question %d must be a string or a category object", i+1)
		}
	}

	if len(flat) > 0 && len(groups) > 0 {
		return nil, errf("Questions cannot mix plain strings and category objects")
	}
	if len(flat) > 0 {
		return []model.QuestionGroup{{Category: "", Questions: flat}}, nil
	}
	return groups, nil
}

func questionGroup(e map[string]any, index int) (model.QuestionGroup, error) {
	var group model.QuestionGroup

	if id, err := Number(e["id"], "Question group id", 0, float64(1<<31)); err != nil {
		return group, err
	} else if id != nil {
		n := int(*id)
		group.ID = &n
	}

	category, err := OptionalString(e["category"], "Question category", 200)
	if err != nil {
		return group, err
	}
	group.Category = sanitize.PlainTrimmed(category)

	if count, err := Number(e["questionCountToAsk"], "Question count to ask", 0, 1000); err != nil {
		return group, err
	} else if count != nil {
		n := int(*count)
		group.QuestionCountToAsk = &n
	}

	items, ok := e["questions"].([]any)
	if !ok {
		return group, errf("Question group %d questions must be an array", index+1)
	}
	if len(items) > maxQuestions {
		return group, errf("Question group %d holds a maximum of %d questions", index+1, maxQuestions)
	}
	group.Questions = make([]string, 0, len(items))
	for j, item := range items {
		s, ok := item.(string)
		if !ok {
			return group, errf("Question %d must be a string", j+1)
		}
		q, err := questionText(s, j)
		if err != nil {
			return group, err
		}
		group.Questions = append(group.Questions, q)
	}
	return group, nil
}

func questionText(s string, index int) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", errf("Question %d cannot be empty", index+1)
	}
	if len([]rune(s)) > maxQuestionLength {
		return "", errf("Question %d exceeds maximum length of %d characters", index+1, maxQuestionLength)
	}
	return sanitize.PlainTrimmed(s), nil
}

// preScreeningQuestions validates the optional pre-screening set.
// Entries that are neither strings nor objects are rejected outright
// rather than passed through unsanitized.
func preScreeningQuestions(v any) ([]model.PreScreeningQuestion, error) {
	if v == nil {
		return nil, nil
	}
	entries, ok := v.([]any)
	if !ok {
		return nil, errf("Pre-screening questions must be an array")
	}
	if len(entries) > maxQuestions {
		return nil, errf("Maximum %d pre-screening questions allowed", maxQuestions)
	}

	out := make([]model.PreScreeningQuestion, 0, len(entries))
	for i, entry := range entries {
		switch e := entry.(type) {
		case string:
			q, err := questionText(e, i)
			if err != nil {
				return nil, err
			}
			out = append(out, model.PreScreeningQuestion{
				Question: q,
				Type:     model.PreScreenTypeShortAnswer,
			})
		case map[string]any:
			psq, err := preScreeningQuestion(e, i)
			if err != nil {
				return nil, err
			}
			out = append(out, psq)
		default:
			return nil, errf("Pre-screening question %d must be a string or an object", i+1)
		}
	}
	return out, nil
}

func preScreeningQuestion(e map[string]any, index int) (model.PreScreeningQuestion, error) {
	var psq model.PreScreeningQuestion

	question, err := String(e["question"], "Pre-screening question", maxQuestionLength)
	if err != nil {
		return psq, err
	}
	psq.Question = sanitize.PlainTrimmed(question)

	qType, err := String(e["type"], "Pre-screening question type", 50)
	if err != nil {
		return psq, err
	}
	psq.Type = strings.ToLower(sanitize.PlainTrimmed(qType))
	if !preScreenTypes[psq.Type] {
		return psq, errf("Pre-screening question %d has an unsupported type %q", index+1, psq.Type)
	}

	if required, err := Bool(e["required"], "Pre-screening question required flag"); err != nil {
		return psq, err
	} else if required != nil {
		psq.Required = *required
	}

	switch psq.Type {
	case model.PreScreenTypeDropdown, model.PreScreenTypeCheckboxes:
		options, ok := e["options"].([]any)
		if !ok || len(options) == 0 {
			return psq, errf("Pre-screening question %d requires at least one option", index+1)
		}
		psq.Options = make([]string, 0, len(options))
		for j, opt := range options {
			s, err := String(opt, "Pre-screening option", 200)
			if err != nil {
				return psq, errf("Pre-screening question %d option %d is invalid", index+1, j+1)
			}
			psq.Options = append(psq.Options, sanitize.PlainTrimmed(s))
		}
	case model.PreScreenTypeRange:
		psq.RangeMin, err = Number(e["rangeMin"], "Pre-screening range minimum", 0, maxSalary)
		if err != nil {
			return psq, err
		}
		psq.RangeMax, err = Number(e["rangeMax"], "Pre-screening range maximum", 0, maxSalary)
		if err != nil {
			return psq, err
		}
		if psq.RangeMin != nil && psq.RangeMax != nil && *psq.RangeMin > *psq.RangeMax {
			return psq, errf("Pre-screening range minimum cannot be greater than maximum")
		}
		label, err := OptionalString(e["rangeLabel"], "Pre-screening range label", 50)
		if err != nil {
			return psq, err
		}
		psq.RangeLabel = sanitize.PlainTrimmed(label)
	}

	return psq, nil
}
