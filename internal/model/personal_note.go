package model

import "strings"

type PersonalNote struct {
	Entity
	TaskID                     int64            `json:"taskId"`
	Name                       string           `json:"name"`
	Type                       PersonalNoteType `json:"type"`
	Note                       string           `json:"note"`
	UserID                     string           `json:"-"`
	CorrespondenceEmailAddress string           `json:"correspondenceEmailAddress"`
}

type PersonalNoteCreate struct {
	Name                       string           `json:"name" validate:"required"`
	Type                       PersonalNoteType `json:"type" validate:"required"`
	Note                       string           `json:"note"`
	UserID                     string           `json:"userId"`
	CorrespondenceEmailAddress string           `json:"correspondenceEmailAddress" validate:"required,email"`
}

func (c *PersonalNoteCreate) Trim() {
	c.Name = strings.TrimSpace(c.Name)
	c.Type = PersonalNoteType(strings.TrimSpace(string(c.Type)))
	c.Note = strings.TrimSpace(c.Note)
	c.UserID = strings.TrimSpace(c.UserID)
	c.CorrespondenceEmailAddress = strings.TrimSpace(c.CorrespondenceEmailAddress)
}

type PersonalNotePatch struct {
	Name Optional[string]           `json:"name"`
	Type Optional[PersonalNoteType] `json:"type"`
	Note Optional[string]           `json:"note"`
}

func (p *PersonalNotePatch) Trim() {
	p.Name.Value = strings.TrimSpace(p.Name.Value)
	p.Type.Value = PersonalNoteType(strings.TrimSpace(string(p.Type.Value)))
	p.Note.Value = strings.TrimSpace(p.Note.Value)
}

func (p PersonalNotePatch) NullFields() []string {
	var fields []string
	if p.Name.Null {
		fields = append(fields, "name")
	}
	if p.Type.Null {
		fields = append(fields, "type")
	}
	if p.Note.Null {
		fields = append(fields, "note")
	}
	return fields
}

func (p PersonalNotePatch) Apply(n *PersonalNote) {
	if v, ok := p.Name.Get(); ok {
		n.Name = v
	}
	if v, ok := p.Type.Get(); ok {
		n.Type = v
	}
	if v, ok := p.Note.Get(); ok {
		n.Note = v
	}
}
