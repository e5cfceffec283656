package model

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDraft    Status = "draft"
)

// Actor identifies who created or last edited a career. Older clients
// send a plain display string; it is normalized into this shape at the
// validation boundary.
type Actor struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}

// QuestionGroup is one interview-question category. A legacy flat list
// of question strings folds into a single group with an empty category.
type QuestionGroup struct {
	ID                 *int     `json:"id,omitempty"`
	Category           string   `json:"category"`
	QuestionCountToAsk *int     `json:"questionCountToAsk"` // nil means ask all
	Questions          []string `json:"questions"`
}

type PreScreeningQuestion struct {
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Required   bool     `json:"required"`
	Options    []string `json:"options,omitempty"`
	RangeMin   *float64 `json:"rangeMin,omitempty"`
	RangeMax   *float64 `json:"rangeMax,omitempty"`
	RangeLabel string   `json:"rangeLabel,omitempty"`
}

const (
	PreScreenTypeDropdown    = "dropdown"
	PreScreenTypeShortAnswer = "short-answer"
	PreScreenTypeLongAnswer  = "long-answer"
	PreScreenTypeCheckboxes  = "checkboxes"
	PreScreenTypeRange       = "range"
)

type Career struct {
	CareerID              int64                  `json:"_id" db:"career_id"`
	ID                    string                 `json:"id" db:"public_id"`
	Slug                  string                 `json:"slug" db:"slug"`
	OrgID                 string                 `json:"orgID" db:"org_id"`
	JobTitle              string                 `json:"jobTitle" db:"job_title"`
	Description           string                 `json:"description" db:"description"`
	Location              string                 `json:"location" db:"location"`
	WorkSetup             string                 `json:"workSetup" db:"work_setup"`
	WorkSetupRemarks      string                 `json:"workSetupRemarks" db:"work_setup_remarks"`
	Country               string                 `json:"country" db:"country"`
	Province              string                 `json:"province" db:"province"`
	EmploymentType        string                 `json:"employmentType" db:"employment_type"`
	Status                Status                 `json:"status" db:"status"`
	ScreeningSetting      string                 `json:"screeningSetting" db:"screening_setting"`
	CvSecretPrompt        string                 `json:"cvSecretPrompt,omitempty" db:"cv_secret_prompt"`
	AiInterviewScreening  string                 `json:"aiInterviewScreening" db:"ai_interview_screening"`
	AiSecretPrompt        string                 `json:"aiSecretPrompt,omitempty" db:"ai_secret_prompt"`
	RequireVideo          *bool                  `json:"requireVideo" db:"require_video"`
	SalaryNegotiable      *bool                  `json:"salaryNegotiable" db:"salary_negotiable"`
	MinimumSalary         *float64               `json:"minimumSalary" db:"minimum_salary"`
	MaximumSalary         *float64               `json:"maximumSalary" db:"maximum_salary"`
	Questions             []QuestionGroup        `json:"questions" db:"questions"`
	PreScreeningQuestions []PreScreeningQuestion `json:"preScreeningQuestions,omitempty" db:"pre_screening_questions"`
	CreatedBy             Actor                  `json:"createdBy" db:"created_by"`
	LastEditedBy          Actor                  `json:"lastEditedBy" db:"last_edited_by"`
	Revision              int64                  `json:"revision" db:"revision"`
	CreatedAt             time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time              `json:"updatedAt" db:"updated_at"`
	LastActivityAt        time.Time              `json:"lastActivityAt" db:"last_activity_at"`
}

type ListCareersQuery struct {
	OrgID    string `form:"orgID" binding:"required"`
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}
