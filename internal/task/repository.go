package task

import "taskboard/internal/model"

type TaskRepository interface {
	Create(title string) model.Task
	List() []model.Task
	Get(id int) (model.Task, error)
	Update(id int, changes model.Changes) (model.Task, error)
	Delete(id int) error
}
