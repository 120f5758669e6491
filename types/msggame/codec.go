package msggame

import (
	"slices"

	"github.com/LukaGiorgadze/gonull"
	"github.com/edup2p/orchid/types/key"
)

// Sealed game wire datagram:
//   SealedMagic (4) + Nacl Secretbox Nonce (24) + sealed (Version + Type + payload).

// Codec turns messages into datagrams and back, sealing them when a room key is set.
type Codec struct {
	Room gonull.Nullable[key.RoomKey]
}

func PlainCodec() Codec {
	return Codec{}
}

func SealedCodec(k key.RoomKey) Codec {
	return Codec{Room: gonull.NewNullable(k)}
}

func (c Codec) IsSealed() bool {
	return c.Room.Valid
}

// Encode never fails for in-memory messages.
func (c Codec) Encode(m Message) []byte {
	if !c.Room.Valid {
		return Marshal(m)
	}

	return slices.Concat(SealedMagicBytes, c.Room.Val.Seal(m.MarshalGameMessage()))
}

// Decode fails with ErrMalformedMessage on anything that isn't a valid datagram for this codec.
func (c Codec) Decode(pkt []byte) (Message, error) {
	if !c.Room.Valid {
		return Parse(pkt)
	}

	if len(pkt) < len(SealedMagic)+key.Overhead || string(pkt[:len(SealedMagic)]) != SealedMagic {
		return nil, malformed("not a sealed datagram (%d bytes)", len(pkt))
	}

	clearBytes, ok := c.Room.Val.Open(pkt[len(SealedMagic):])
	if !ok {
		return nil, malformed("could not open sealed datagram")
	}

	return ParseGameMessage(clearBytes)
}
