package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// AccountIDLength is the byte length of an AccountId32.
	AccountIDLength = 32

	// DefaultSS58Prefix is the generic Substrate network prefix, used by development chains.
	DefaultSS58Prefix uint16 = 42

	ss58ChecksumLength = 2
	maxSS58Prefix      = 16383
)

var (
	// ErrInvalidAccountID is returned when an account id cannot be parsed.
	ErrInvalidAccountID = errors.New("invalid account id")
	// ErrInvalidSS58Prefix is returned when a network prefix does not fit in 14 bits.
	ErrInvalidSS58Prefix = errors.New("invalid ss58 prefix")

	ss58Preimage = []byte("SS58PRE")
)

// AccountID is a 32 byte Substrate account identifier.
//
// It remembers the text it was parsed from so that diagnostics quote the address exactly as
// the user supplied it.
type AccountID struct {
	key  [AccountIDLength]byte
	repr string
}

// NewAccountID creates an AccountID from raw bytes. Its string form is the SS58 encoding with
// DefaultSS58Prefix.
func NewAccountID(b []byte) (AccountID, error) {
	if len(b) != AccountIDLength {
		return AccountID{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAccountID, AccountIDLength, len(b))
	}

	var a AccountID
	copy(a.key[:], b)
	a.repr = encodeSS58(DefaultSS58Prefix, a.key)

	return a, nil
}

// ParseAccountID parses an SS58 address or a 0x-prefixed hex encoded account id.
func ParseAccountID(s string) (AccountID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AccountID{}, fmt.Errorf("%w: empty string", ErrInvalidAccountID)
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, err := hexutil.Decode("0x" + s[2:])
		if err != nil {
			return AccountID{}, fmt.Errorf("%w: %q: %w", ErrInvalidAccountID, s, err)
		}
		a, err := NewAccountID(b)
		if err != nil {
			return AccountID{}, err
		}
		a.repr = s

		return a, nil
	}

	_, key, err := DecodeSS58(s)
	if err != nil {
		return AccountID{}, err
	}

	return AccountID{key: key, repr: s}, nil
}

// MustParseAccountID parses an account id and panics if it is invalid.
//
// Useful for tests, but should be avoided in production code.
func MustParseAccountID(s string) AccountID {
	a, err := ParseAccountID(s)
	if err != nil {
		panic(err)
	}

	return a
}

// Bytes returns a copy of the raw account id.
func (a AccountID) Bytes() []byte {
	return bytes.Clone(a.key[:])
}

// Hex returns the 0x-prefixed hex encoding of the account id.
func (a AccountID) Hex() string {
	return hexutil.Encode(a.key[:])
}

// IsZero reports whether the account id holds no value.
func (a AccountID) IsZero() bool {
	return a.key == [AccountIDLength]byte{} && a.repr == ""
}

// Equal compares the raw account ids, ignoring how they were written.
func (a AccountID) Equal(other AccountID) bool {
	return a.key == other.key
}

// String returns the address in the form it was parsed from.
func (a AccountID) String() string {
	if a.repr == "" {
		return encodeSS58(DefaultSS58Prefix, a.key)
	}

	return a.repr
}

// DecodeSS58 decodes an SS58 address into its network prefix and account id, verifying the
// blake2b checksum.
func DecodeSS58(address string) (uint16, [AccountIDLength]byte, error) {
	var key [AccountIDLength]byte

	data, err := base58.Decode(address)
	if err != nil {
		return 0, key, fmt.Errorf("%w: %q: %w", ErrInvalidAccountID, address, err)
	}
	if len(data) < 2 {
		return 0, key, fmt.Errorf("%w: %q: too short", ErrInvalidAccountID, address)
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case data[0] < 64:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] < 128:
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0b0011_1111
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return 0, key, fmt.Errorf("%w: %q: invalid ss58 prefix", ErrInvalidAccountID, address)
	}

	if len(data) != prefixLen+AccountIDLength+ss58ChecksumLength {
		return 0, key, fmt.Errorf("%w: %q: unexpected length %d", ErrInvalidAccountID, address, len(data))
	}

	body := data[:len(data)-ss58ChecksumLength]
	checksum := ss58Checksum(body)
	if !bytes.Equal(checksum[:ss58ChecksumLength], data[len(body):]) {
		return 0, key, fmt.Errorf("%w: %q: checksum mismatch", ErrInvalidAccountID, address)
	}

	copy(key[:], body[prefixLen:])

	return prefix, key, nil
}

// EncodeSS58 encodes an account id as an SS58 address for the given network prefix.
func EncodeSS58(prefix uint16, key [AccountIDLength]byte) (string, error) {
	if prefix > maxSS58Prefix {
		return "", fmt.Errorf("%w: %d exceeds %d", ErrInvalidSS58Prefix, prefix, maxSS58Prefix)
	}

	return encodeSS58(prefix, key), nil
}

// encodeSS58 expects prefix to be at most maxSS58Prefix.
func encodeSS58(prefix uint16, key [AccountIDLength]byte) string {
	var body []byte
	if prefix < 64 {
		body = append(body, byte(prefix))
	} else {
		first := byte((prefix&0b1111_1100)>>2) | 0b0100_0000
		second := byte(prefix>>8) | byte(prefix&0b11)<<6
		body = append(body, first, second)
	}
	body = append(body, key[:]...)

	checksum := ss58Checksum(body)

	return base58.Encode(append(body, checksum[:ss58ChecksumLength]...))
}

func ss58Checksum(body []byte) [blake2b.Size]byte {
	return blake2b.Sum512(append(bytes.Clone(ss58Preimage), body...))
}
