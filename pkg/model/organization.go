package model

import "github.com/google/uuid"

type Plan struct {
	PlanID   uuid.UUID `json:"plan_id" db:"plan_id"`
	Name     string    `json:"name" db:"name"`
	JobLimit int       `json:"jobLimit" db:"job_limit"`
}

type Organization struct {
	OrgID         uuid.UUID `json:"org_id" db:"org_id"`
	Name          string    `json:"name" db:"name"`
	PlanID        uuid.UUID `json:"plan_id" db:"plan_id"`
	ExtraJobSlots int       `json:"extraJobSlots" db:"extra_job_slots"`
	Plan          Plan      `json:"plan"`
}

// Allowance is the maximum number of concurrently active careers the
// organization may hold.
func (o *Organization) Allowance() int {
	return o.Plan.JobLimit + o.ExtraJobSlots
}
