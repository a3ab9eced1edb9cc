package paymul

import (
	"strings"
	"time"
)

// Message is the PAYMUL message carried by an interchange. HSBC accepts one
// message per interchange.
type Message struct {
	reference string
	createdAt time.Time
	batches   []*Batch
}

// NewMessage takes a snapshot of batches: later changes to them do not reach
// the message.
func NewMessage(reference string, createdAt time.Time, batches ...*Batch) (Message, error) {
	reference = strings.ToUpper(reference)
	if reference == "" {
		return Message{}, invalid("message_reference", reference, "must be set")
	}
	if err := checkAlnum("message_reference", reference, maxMessageID); err != nil {
		return Message{}, err
	}
	if createdAt.IsZero() {
		return Message{}, invalid("created_at", "", "must be set")
	}
	if len(batches) == 0 {
		return Message{}, invalid("batches", "", "message needs at least one batch")
	}

	frozen := make([]*Batch, 0, len(batches))
	for _, b := range batches {
		if b == nil {
			return Message{}, invalid("batches", "", "nil batch")
		}
		frozen = append(frozen, b.clone())
	}

	return Message{
		reference: reference,
		createdAt: createdAt,
		batches:   frozen,
	}, nil
}

func (m Message) Reference() string { return m.reference }

func (m Message) CreatedAt() time.Time { return m.createdAt }

// Batches returns copies of the message batches.
func (m Message) Batches() []*Batch {
	batches := make([]*Batch, 0, len(m.batches))
	for _, b := range m.batches {
		batches = append(batches, b.clone())
	}

	return batches
}

// TransactionCount counts the transactions across all batches.
func (m Message) TransactionCount() int {
	count := 0
	for _, b := range m.batches {
		count += b.Len()
	}

	return count
}
