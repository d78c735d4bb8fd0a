package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/studentlife/campus/internal/domain"
)

// Ensure ScheduleRepository implements the domain contract.
var _ domain.ScheduleRepository = (*ScheduleRepository)(nil)

// ScheduleRepository talks to the /classes endpoints.
type ScheduleRepository struct {
	client *Client
}

// NewScheduleRepository creates a ScheduleRepository on the shared client.
func NewScheduleRepository(client *Client) *ScheduleRepository {
	return &ScheduleRepository{client: client}
}

// classDTO is the wire representation of a scheduled class.
type classDTO struct {
	ID         string `json:"_id,omitempty"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Instructor string `json:"instructor"`
	Location   string `json:"location,omitempty"`
	Day        string `json:"day"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

func (d classDTO) toDomain() domain.Class {
	return domain.Class{
		ID:         d.ID,
		Owner:      d.Email,
		Subject:    d.Subject,
		Instructor: d.Instructor,
		Location:   d.Location,
		Day:        domain.Weekday(d.Day),
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
	}
}

func classToDTO(c domain.Class) classDTO {
	return classDTO{
		ID:         c.ID,
		Email:      c.Owner,
		Subject:    c.Subject,
		Instructor: c.Instructor,
		Location:   c.Location,
		Day:        string(c.Day),
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
	}
}

// ListByOwner retrieves all classes belonging to owner.
func (r *ScheduleRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Class, error) {
	req, err := r.client.newRequest(ctx, http.MethodGet, "/classes", url.Values{"email": {owner}}, nil)
	if err != nil {
		return nil, domain.NewFetchError("list classes", err)
	}

	var dtos []classDTO
	if err := r.client.do(req, "list classes", &dtos); err != nil {
		return nil, err
	}

	classes := make([]domain.Class, 0, len(dtos))
	for _, d := range dtos {
		classes = append(classes, d.toDomain())
	}
	return classes, nil
}

// Create persists a new class and returns it with the assigned ID.
func (r *ScheduleRepository) Create(ctx context.Context, class domain.Class) (domain.Class, error) {
	req, err := r.client.newRequest(ctx, http.MethodPost, "/classes", nil, classToDTO(class))
	if err != nil {
		return domain.Class{}, domain.NewFetchError("create class", err)
	}

	var dto classDTO
	if err := r.client.do(req, "create class", &dto); err != nil {
		return domain.Class{}, err
	}
	return dto.toDomain(), nil
}

// Delete removes a class.
func (r *ScheduleRepository) Delete(ctx context.Context, id, owner string) error {
	req, err := r.client.newRequest(ctx, http.MethodDelete, "/classes/"+url.PathEscape(id), url.Values{"email": {owner}}, nil)
	if err != nil {
		return domain.NewFetchError("delete class", err)
	}
	return r.client.do(req, "delete class", nil)
}
