package paymul

import (
	"strings"
	"time"
)

// Interchange is the outermost envelope of a PAYMUL file.
type Interchange struct {
	clientID  string
	reference string
	createdAt time.Time
	message   Message
}

// NewInterchange wraps message. The reference must come from the caller's
// sequence; it is never generated here.
func NewInterchange(clientID, reference string, createdAt time.Time, message Message) (Interchange, error) {
	clientID = strings.ToUpper(strings.TrimSpace(clientID))
	if clientID == "" {
		return Interchange{}, invalid("client_id", clientID, "must be set")
	}
	if err := checkAlnum("client_id", clientID, maxClientID); err != nil {
		return Interchange{}, err
	}

	reference = strings.ToUpper(reference)
	if reference == "" {
		return Interchange{}, invalid("interchange_reference", reference, "must be set")
	}
	if err := checkAlnum("interchange_reference", reference, maxInterchangeID); err != nil {
		return Interchange{}, err
	}

	if createdAt.IsZero() {
		return Interchange{}, invalid("created_at", "", "must be set")
	}
	if len(message.batches) == 0 {
		return Interchange{}, invalid("message", "", "interchange needs a message with at least one batch")
	}

	return Interchange{
		clientID:  clientID,
		reference: reference,
		createdAt: createdAt,
		message:   message,
	}, nil
}

func (i Interchange) ClientID() string { return i.clientID }

func (i Interchange) Reference() string { return i.reference }

func (i Interchange) CreatedAt() time.Time { return i.createdAt }

func (i Interchange) Message() Message { return i.message }
