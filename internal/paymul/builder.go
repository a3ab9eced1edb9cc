package paymul

import "time"

// Builder assembles a complete interchange before it is encoded. The message
// shares the interchange reference.
type Builder struct {
	clientID  string
	reference string
	createdAt time.Time
	batches   []*Batch
}

func NewBuilder(clientID, reference string, createdAt time.Time) *Builder {
	return &Builder{
		clientID:  clientID,
		reference: reference,
		createdAt: createdAt,
	}
}

func (b *Builder) AddBatch(batch *Batch) *Builder {
	b.batches = append(b.batches, batch)
	return b
}

// Build freezes the collected batches into an Interchange.
func (b *Builder) Build() (Interchange, error) {
	message, err := NewMessage(b.reference, b.createdAt, b.batches...)
	if err != nil {
		return Interchange{}, err
	}

	return NewInterchange(b.clientID, b.reference, b.createdAt, message)
}
