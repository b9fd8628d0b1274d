package task

import (
	"context"

	"taskboard/internal/latency"
	"taskboard/internal/model"
)

// Service is the CRUD facade over a TaskRepository. Every call applies its
// change to the repository first and then waits the simulated latency, so a
// caller that gives up during the wait still leaves the change committed.
type Service struct {
	repo    TaskRepository
	latency *latency.Simulator
}

// NewService wires the facade. A nil simulator disables the delay.
func NewService(repo TaskRepository, sim *latency.Simulator) *Service {
	return &Service{repo: repo, latency: sim}
}

func (s *Service) List(ctx context.Context) ([]model.Task, error) {
	tasks := s.repo.List()
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Service) Create(ctx context.Context, title string) (model.Task, error) {
	if err := ValidateTitle(title); err != nil {
		return model.Task{}, err
	}

	created := s.repo.Create(title)
	if err := s.latency.Wait(ctx); err != nil {
		return model.Task{}, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int) (model.Task, error) {
	found, err := s.repo.Get(id)
	if err != nil {
		return model.Task{}, err
	}
	if err := s.latency.Wait(ctx); err != nil {
		return model.Task{}, err
	}
	return found, nil
}

// Update merges changes into the task. An empty change set returns the task
// as stored. Titles are not validated here.
func (s *Service) Update(ctx context.Context, id int, changes model.Changes) (model.Task, error) {
	if changes.Empty() {
		return s.Get(ctx, id)
	}

	updated, err := s.repo.Update(id, changes)
	if err != nil {
		return model.Task{}, err
	}
	if err := s.latency.Wait(ctx); err != nil {
		return model.Task{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) (model.DeleteResult, error) {
	if err := s.repo.Delete(id); err != nil {
		return model.DeleteResult{}, err
	}
	if err := s.latency.Wait(ctx); err != nil {
		return model.DeleteResult{}, err
	}
	return model.DeleteResult{Success: true}, nil
}
