package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/studentlife/campus/internal/domain"
)

// Ensure TaskRepository implements the domain contract.
var _ domain.TaskRepository = (*TaskRepository)(nil)

// TaskRepository talks to the /tasks endpoints.
type TaskRepository struct {
	client *Client
}

// NewTaskRepository creates a TaskRepository on the shared client.
func NewTaskRepository(client *Client) *TaskRepository {
	return &TaskRepository{client: client}
}

// taskDTO is the wire representation of a task.
type taskDTO struct {
	ID        string  `json:"_id,omitempty"`
	Email     string  `json:"email"`
	Subject   string  `json:"subject"`
	Topic     string  `json:"topic"`
	Priority  string  `json:"priority"`
	Deadline  apiDate `json:"deadline"`
	TimeSlot  string  `json:"timeSlot"`
	Notes     string  `json:"notes,omitempty"`
	Duration  apiInt  `json:"duration"`
	Completed bool    `json:"completed"`
}

func (d taskDTO) toDomain() domain.Task {
	return domain.Task{
		ID:        d.ID,
		Owner:     d.Email,
		Subject:   d.Subject,
		Topic:     d.Topic,
		Priority:  domain.Priority(d.Priority),
		Deadline:  d.Deadline.Time,
		TimeSlot:  d.TimeSlot,
		Notes:     d.Notes,
		Duration:  int(d.Duration),
		Completed: d.Completed,
	}
}

func taskToDTO(t domain.Task) taskDTO {
	return taskDTO{
		ID:        t.ID,
		Email:     t.Owner,
		Subject:   t.Subject,
		Topic:     t.Topic,
		Priority:  string(t.Priority),
		Deadline:  apiDate{t.Deadline},
		TimeSlot:  t.TimeSlot,
		Notes:     t.Notes,
		Duration:  apiInt(t.Duration),
		Completed: t.Completed,
	}
}

// taskPatchDTO carries only the fields present in the patch.
type taskPatchDTO struct {
	Email     string   `json:"email"`
	Subject   *string  `json:"subject,omitempty"`
	Topic     *string  `json:"topic,omitempty"`
	Priority  *string  `json:"priority,omitempty"`
	Deadline  *apiDate `json:"deadline,omitempty"`
	TimeSlot  *string  `json:"timeSlot,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Duration  *apiInt  `json:"duration,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
}

func patchToDTO(owner string, patch domain.TaskPatch) taskPatchDTO {
	dto := taskPatchDTO{
		Email:     owner,
		Subject:   patch.Subject,
		Topic:     patch.Topic,
		TimeSlot:  patch.TimeSlot,
		Notes:     patch.Notes,
		Completed: patch.Completed,
	}
	if patch.Priority != nil {
		p := string(*patch.Priority)
		dto.Priority = &p
	}
	if patch.Deadline != nil {
		d := apiDate{*patch.Deadline}
		dto.Deadline = &d
	}
	if patch.Duration != nil {
		n := apiInt(*patch.Duration)
		dto.Duration = &n
	}
	return dto
}

// ListByOwner retrieves all tasks belonging to owner.
func (r *TaskRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	req, err := r.client.newRequest(ctx, http.MethodGet, "/tasks", url.Values{"email": {owner}}, nil)
	if err != nil {
		return nil, domain.NewFetchError("list tasks", err)
	}

	var dtos []taskDTO
	if err := r.client.do(req, "list tasks", &dtos); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(dtos))
	for _, d := range dtos {
		tasks = append(tasks, d.toDomain())
	}
	return tasks, nil
}

// Create persists a new task and returns it with the assigned ID.
func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	req, err := r.client.newRequest(ctx, http.MethodPost, "/tasks", nil, taskToDTO(task))
	if err != nil {
		return domain.Task{}, domain.NewFetchError("create task", err)
	}

	var dto taskDTO
	if err := r.client.do(req, "create task", &dto); err != nil {
		return domain.Task{}, err
	}
	return dto.toDomain(), nil
}

// Update applies a partial update and returns the updated task.
func (r *TaskRepository) Update(ctx context.Context, id, owner string, patch domain.TaskPatch) (domain.Task, error) {
	req, err := r.client.newRequest(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), nil, patchToDTO(owner, patch))
	if err != nil {
		return domain.Task{}, domain.NewFetchError("update task", err)
	}

	var dto taskDTO
	if err := r.client.do(req, "update task", &dto); err != nil {
		return domain.Task{}, err
	}
	return dto.toDomain(), nil
}

// Delete removes a task.
func (r *TaskRepository) Delete(ctx context.Context, id, owner string) error {
	req, err := r.client.newRequest(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), url.Values{"email": {owner}}, nil)
	if err != nil {
		return domain.NewFetchError("delete task", err)
	}
	return r.client.do(req, "delete task", nil)
}
