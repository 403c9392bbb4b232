package repo

import (
	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_outbox"
)

// OutboxRepo writes order events to the shared outbox table.
type OutboxRepo struct {
	model *m_outbox.Model
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo() contracts.OutboxRepository {
	return &OutboxRepo{model: m_outbox.NewModel()}
}

// InsertEventMut creates a mutation for inserting an order event.
func (r *OutboxRepo) InsertEventMut(event domain.DomainEvent, payload string) *spanner.Mutation {
	return r.model.InsertMut(&m_outbox.Data{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     spanner.NullJSON{Value: payload, Valid: payload != ""},
		Status:      m_outbox.StatusPending,
		RetryCount:  0,
	})
}
