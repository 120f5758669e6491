// Package key contains the optional room key that seals game datagrams between nodes of one match.
package key

import (
	"crypto/subtle"
	"fmt"

	"github.com/edup2p/orchid/types"
	"go4.org/mem"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	Len = 32

	// NonceLen is the secretbox nonce prepended to every sealed datagram.
	NonceLen = 24

	// Overhead is the amount of bytes Seal adds on top of the cleartext.
	Overhead = NonceLen + secretbox.Overhead

	roomHexPrefix = "room:"

	passphraseDomain = "orchid room key v1\x00"
)

// RoomKey is a symmetric secret shared by every node of a match.
type RoomKey struct {
	_   types.Incomparable
	key [Len]byte
}

// NewRoom creates a random room key.
func NewRoom() RoomKey {
	var ret RoomKey
	rand(ret.key[:])
	return ret
}

// RoomFromPassphrase deterministically derives a room key, so that players only need to agree on a phrase.
func RoomFromPassphrase(passphrase string) RoomKey {
	return RoomKey{key: blake2b.Sum256([]byte(passphraseDomain + passphrase))}
}

// Equal reports whether k and other are the same key.
func (k RoomKey) Equal(other RoomKey) bool {
	return subtle.ConstantTimeCompare(k.key[:], other.key[:]) == 1
}

// IsZero reports whether k is the zero value.
func (k RoomKey) IsZero() bool {
	return k.Equal(RoomKey{})
}

// Debug returns a short fingerprint, safe to log.
func (k RoomKey) Debug() string {
	sum := blake2b.Sum256(k.key[:])
	return fmt.Sprintf("%x", sum[:4])
}

// Seal wraps cleartext into a NaCl secretbox (see
// golang.org/x/crypto/nacl), using k and a random nonce.
//
// The returned ciphertext is a 24-byte nonce concatenated with the box value.
func (k RoomKey) Seal(cleartext []byte) (ciphertext []byte) {
	if k.IsZero() {
		panic("can't seal with zero key")
	}
	var nonce [NonceLen]byte
	rand(nonce[:])
	return secretbox.Seal(nonce[:], cleartext, &nonce, &k.key)
}

// Open opens the secretbox ciphertext, which must be a value created
// by Seal, and returns the inner cleartext if ciphertext is a valid
// box under k.
func (k RoomKey) Open(ciphertext []byte) (cleartext []byte, ok bool) {
	if k.IsZero() {
		panic("can't open with zero key")
	}
	if len(ciphertext) < NonceLen {
		return nil, false
	}
	nonce := (*[NonceLen]byte)(ciphertext)
	return secretbox.Open(nil, ciphertext[NonceLen:], nonce, &k.key)
}

// AppendText implements encoding.TextAppender. It appends a typed prefix
// followed by hex encoded represtation of k to b.
func (k RoomKey) AppendText(b []byte) ([]byte, error) {
	return appendHexKey(b, roomHexPrefix, k.key[:]), nil
}

// MarshalText implements encoding.TextMarshaler.
func (k RoomKey) MarshalText() ([]byte, error) {
	return k.AppendText(nil)
}

// UnmarshalText implements encoding.TextUnmarshaler. It expects a typed prefix
// followed by a hex encoded representation of k.
func (k *RoomKey) UnmarshalText(b []byte) error {
	return parseHex(k.key[:], mem.B(b), mem.S(roomHexPrefix))
}
