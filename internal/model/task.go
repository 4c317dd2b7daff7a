package model

import "strings"

type Task struct {
	Entity
	Name                       string     `json:"name"`
	Status                     TaskStatus `json:"status"`
	Type                       TaskType   `json:"type"`
	UserID                     string     `json:"-"`
	CorrespondenceEmailAddress string     `json:"correspondenceEmailAddress"`
}

type TaskCreate struct {
	Name                       string     `json:"name" validate:"required"`
	Status                     TaskStatus `json:"status" validate:"required"`
	Type                       TaskType   `json:"type" validate:"required"`
	UserID                     string     `json:"userId"`
	CorrespondenceEmailAddress string     `json:"correspondenceEmailAddress" validate:"required,email"`
}

func (c *TaskCreate) Trim() {
	c.Name = strings.TrimSpace(c.Name)
	c.Status = TaskStatus(strings.TrimSpace(string(c.Status)))
	c.Type = TaskType(strings.TrimSpace(string(c.Type)))
	c.UserID = strings.TrimSpace(c.UserID)
	c.CorrespondenceEmailAddress = strings.TrimSpace(c.CorrespondenceEmailAddress)
}

// TaskPatch is a partial update. Only fields present in the request body are applied.
type TaskPatch struct {
	Name   Optional[string]     `json:"name"`
	Status Optional[TaskStatus] `json:"status"`
	Type   Optional[TaskType]   `json:"type"`
}

func (p *TaskPatch) Trim() {
	p.Name.Value = strings.TrimSpace(p.Name.Value)
	p.Status.Value = TaskStatus(strings.TrimSpace(string(p.Status.Value)))
	p.Type.Value = TaskType(strings.TrimSpace(string(p.Type.Value)))
}

// NullFields lists fields that were sent as null. None of them are nullable.
func (p TaskPatch) NullFields() []string {
	var fields []string
	if p.Name.Null {
		fields = append(fields, "name")
	}
	if p.Status.Null {
		fields = append(fields, "status")
	}
	if p.Type.Null {
		fields = append(fields, "type")
	}
	return fields
}

func (p TaskPatch) Apply(t *Task) {
	if v, ok := p.Name.Get(); ok {
		t.Name = v
	}
	if v, ok := p.Status.Get(); ok {
		t.Status = v
	}
	if v, ok := p.Type.Get(); ok {
		t.Type = v
	}
}
