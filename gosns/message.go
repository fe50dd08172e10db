package gosns

import (
	"encoding/json"
)

// Message is the payload published to a topic: either a plain string
// delivered verbatim to every endpoint type, or a per-protocol mapping
// delivered with MessageStructure=json. The zero value is invalid.
type Message struct {
	body      string
	structure string
	valid     bool
}

// NewMessage returns a plain-string message delivered verbatim to all
// endpoint types.
func NewMessage(body string) Message {
	return Message{body: body, valid: true}
}

// NewJSONMessage returns a multi-protocol message. The map keys are
// protocol names ("email", "sms", "http", ...) and must include a
// "default" key, which the service applies to every protocol without its
// own entry. A map holding only the "default" key collapses to a plain
// message, so both forms serialize identically.
func NewJSONMessage(byProtocol map[string]string) (Message, error) {
	body, ok := byProtocol["default"]
	if !ok {
		return Message{}, NewMissingDefaultKeyError()
	}
	if len(byProtocol) == 1 {
		return NewMessage(body), nil
	}

	encoded, err := json.Marshal(byProtocol)
	if err != nil {
		return Message{}, NewInvalidParamsError(err)
	}

	return Message{body: string(encoded), structure: "json", valid: true}, nil
}

// IsZero reports whether the message is the zero value, i.e. was not
// constructed with NewMessage or NewJSONMessage.
func (m Message) IsZero() bool {
	return !m.valid
}

// build returns the wire body and the MessageStructure value, empty for
// plain messages.
func (m Message) build() (body, structure string) {
	return m.body, m.structure
}
