package model

import "slices"

type TaskStatus string

const (
	TaskStatusToDo               TaskStatus = "To Do"
	TaskStatusInProgress         TaskStatus = "In Progress"
	TaskStatusPendingForRevision TaskStatus = "Pending For Revision"
	TaskStatusDone               TaskStatus = "Done"
)

func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusToDo, TaskStatusInProgress, TaskStatusPendingForRevision, TaskStatusDone}
}

func (s TaskStatus) Valid() bool {
	return slices.Contains(TaskStatuses(), s)
}

type TaskType string

const (
	TaskTypeWork      TaskType = "Work"
	TaskTypeStudies   TaskType = "Studies"
	TaskTypeWellBeing TaskType = "Well Being"
	TaskTypeOthers    TaskType = "Others"
)

func TaskTypes() []TaskType {
	return []TaskType{TaskTypeWork, TaskTypeStudies, TaskTypeWellBeing, TaskTypeOthers}
}

func (t TaskType) Valid() bool {
	return slices.Contains(TaskTypes(), t)
}

type PersonalNoteType string

const (
	PersonalNoteTypeDescription    PersonalNoteType = "Description"
	PersonalNoteTypeProgressReport PersonalNoteType = "Progress Report"
	PersonalNoteTypeObservations   PersonalNoteType = "Observations"
)

func PersonalNoteTypes() []PersonalNoteType {
	return []PersonalNoteType{PersonalNoteTypeDescription, PersonalNoteTypeProgressReport, PersonalNoteTypeObservations}
}

func (t PersonalNoteType) Valid() bool {
	return slices.Contains(PersonalNoteTypes(), t)
}
