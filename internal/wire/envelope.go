package wire

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"cryptalk/internal/crypto"
	"cryptalk/internal/domain"
)

// Kind tags the envelope variant.
type Kind uint8

const (
	// KindMessage carries an encrypted message.
	KindMessage Kind = 1
	// KindDummy is cover traffic; receivers discard it after decoding.
	KindDummy Kind = 2
)

// ErrMalformed indicates an envelope that does not decode to a valid
// variant or whose fixed-size fields have the wrong length.
var ErrMalformed = errors.New("malformed envelope")

// Envelope is the tagged union exchanged over the transport. The crypto
// core never sees it; the dummy-versus-message split lives entirely at
// this boundary.
type Envelope struct {
	Kind    Kind
	Message *domain.EncryptedMessage
	Padding []byte
}

// wireEnvelope is the CBOR shape. Integer keys keep the framing small.
type wireEnvelope struct {
	Kind       Kind   `cbor:"1,keyasint"`
	Ciphertext []byte `cbor:"2,keyasint,omitempty"`
	Nonce      []byte `cbor:"3,keyasint,omitempty"`
	Ephemeral  []byte `cbor:"4,keyasint,omitempty"`
	MAC        []byte `cbor:"5,keyasint,omitempty"`
	Padding    []byte `cbor:"6,keyasint,omitempty"`
}

// NewMessage wraps an encrypted message for the transport.
func NewMessage(msg domain.EncryptedMessage) Envelope {
	return Envelope{Kind: KindMessage, Message: &msg}
}

// NewDummy builds a cover-traffic envelope with n random padding bytes.
func NewDummy(n int) (Envelope, error) {
	pad, err := crypto.RandomBytes(n)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Kind: KindDummy, Padding: pad}, nil
}

// Encode serialises the envelope to CBOR.
func (e Envelope) Encode() ([]byte, error) {
	w := wireEnvelope{Kind: e.Kind}
	switch e.Kind {
	case KindMessage:
		if e.Message == nil {
			return nil, fmt.Errorf("%w: message envelope without message", ErrMalformed)
		}
		w.Ciphertext = e.Message.Ciphertext
		w.Nonce = e.Message.Nonce[:]
		w.Ephemeral = e.Message.EphemeralPublicKey[:]
		w.MAC = e.Message.MAC[:]
	case KindDummy:
		w.Padding = e.Padding
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrMalformed, e.Kind)
	}
	return cbor.Marshal(w)
}

// Decode parses a CBOR envelope, enforcing byte-for-byte fidelity of the
// fixed-size fields.
func Decode(data []byte) (Envelope, error) {
	var w wireEnvelope
	if err := cbor.Unmarshal(data, &w); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch w.Kind {
	case KindMessage:
		if len(w.Nonce) != domain.NonceSize ||
			len(w.Ephemeral) != len(domain.X25519Public{}) ||
			len(w.MAC) != domain.TagSize {
			return Envelope{}, fmt.Errorf("%w: bad field length", ErrMalformed)
		}
		msg := domain.EncryptedMessage{Ciphertext: w.Ciphertext}
		copy(msg.Nonce[:], w.Nonce)
		copy(msg.EphemeralPublicKey[:], w.Ephemeral)
		copy(msg.MAC[:], w.MAC)
		return Envelope{Kind: KindMessage, Message: &msg}, nil
	case KindDummy:
		return Envelope{Kind: KindDummy, Padding: w.Padding}, nil
	default:
		return Envelope{}, fmt.Errorf("%w: unknown kind %d", ErrMalformed, w.Kind)
	}
}
