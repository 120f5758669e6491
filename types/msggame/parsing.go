package msggame

import (
	"errors"
	"fmt"

	"github.com/LukaGiorgadze/gonull"
	"github.com/edup2p/orchid/types/bin"
	"github.com/edup2p/orchid/types/entity"
	"github.com/google/uuid"
)

// Game wire datagram:
//   Magic (4) + Version (1) + Type (1) + fixed-size payload.

// ErrMalformedMessage is returned for every datagram that can't be decoded, wrapped with the reason.
var ErrMalformedMessage = errors.New("malformed game message")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedMessage, fmt.Sprintf(format, args...))
}

func LooksLikeGameMessage(pkt []byte) bool {
	if len(pkt) < len(Magic)+headerLen {
		return false
	}

	return string(pkt[:len(Magic)]) == Magic
}

// Marshal returns the full plain datagram for m.
func Marshal(m Message) []byte {
	return append(append([]byte{}, MagicBytes...), m.MarshalGameMessage()...)
}

// Parse parses a full plain datagram.
func Parse(pkt []byte) (Message, error) {
	if !LooksLikeGameMessage(pkt) {
		return nil, malformed("missing magic or too short (%d bytes)", len(pkt))
	}

	return ParseGameMessage(pkt[len(Magic):])
}

// ParseGameMessage parses version + type + payload, as returned by MarshalGameMessage.
func ParseGameMessage(usrMsg []byte) (Message, error) {
	if len(usrMsg) < headerLen {
		return nil, malformed("too short for header")
	}

	version := usrMsg[0]
	msgType := usrMsg[1]

	specificMsg := usrMsg[headerLen:]

	if VersionMarker(version) != v1 {
		return nil, malformed("invalid version: %x", version)
	}

	switch MessageType(msgType) {
	case BulletMessage:
		return parseBullet(specificMsg)
	case ShipSnapshotMessage:
		return parseShipSnapshot(specificMsg)
	case AddressMessage:
		return parseAddress(specificMsg)
	case ShipUpdateMessage:
		return parseShipUpdate(specificMsg)
	case ConnectMessage:
		return signal(&Connect{}, specificMsg)
	case StartMessage:
		return signal(&Start{}, specificMsg)
	case RestartMessage:
		return signal(&Restart{}, specificMsg)
	case WinMessage:
		return signal(&Win{}, specificMsg)
	case DeathMessage:
		return parseDeath(specificMsg)
	default:
		return nil, malformed("invalid message type: %x", msgType)
	}
}

func expectLen(b []byte, n int) error {
	if len(b) != n {
		return malformed("payload is %d bytes, expected %d", len(b), n)
	}
	return nil
}

// signal returns m if the payload is empty, as it must be for payload-less messages.
func signal(m Message, b []byte) (Message, error) {
	if err := expectLen(b, 0); err != nil {
		return nil, err
	}
	return m, nil
}

// reader walks a payload whose length has already been checked.
type reader struct {
	b   []byte
	err error
}

func (r *reader) id() uuid.UUID {
	id := uuid.UUID(r.b[:16])
	r.b = r.b[16:]
	return id
}

func (r *reader) f32() float32 {
	f := bin.ParseFloat32([bin.Float32Len]byte(r.b[:bin.Float32Len]))
	r.b = r.b[bin.Float32Len:]
	return f
}

func (r *reader) flag() bool {
	v, err := bin.ParseBool(r.b[0])
	r.b = r.b[1:]
	if err != nil && r.err == nil {
		r.err = malformed("%s", err)
	}
	return v
}

func (r *reader) possession() entity.Possession {
	p := entity.Possession(r.b[0])
	r.b = r.b[1:]
	if !p.Valid() && r.err == nil {
		r.err = malformed("invalid possession %d", byte(p))
	}
	return p
}

func (r *reader) kind() entity.BulletKind {
	k := entity.BulletKind(r.b[0])
	r.b = r.b[1:]
	if !k.Valid() && r.err == nil {
		r.err = malformed("invalid bullet kind %d", byte(k))
	}
	return k
}

func parseBullet(b []byte) (Message, error) {
	if err := expectLen(b, bulletLen); err != nil {
		return nil, err
	}

	r := &reader{b: b}

	var eb entity.Bullet
	eb.Possession = r.possession()
	eb.Kind = r.kind()
	eb.Angle = r.f32()
	eb.Pos.X = r.f32()
	eb.Pos.Y = r.f32()
	eb.Hit = r.flag()

	if r.err != nil {
		return nil, r.err
	}

	return &Bullet{Bullet: eb}, nil
}

func parseShipSnapshot(b []byte) (Message, error) {
	if err := expectLen(b, shipSnapshotLen); err != nil {
		return nil, err
	}

	r := &reader{b: b}

	var sh entity.Ship
	sh.ID = r.id()
	sh.Possession = r.possession()
	sh.Pos.X = r.f32()
	sh.Pos.Y = r.f32()
	sh.Angle = r.f32()
	hasDirection := r.flag()
	direction := r.f32()
	sh.Health = r.f32()
	sh.Shield = r.flag()

	if r.err != nil {
		return nil, r.err
	}

	if hasDirection {
		sh.Direction = gonull.NewNullable(direction)
	}

	return &ShipSnapshot{Ship: sh}, nil
}

func parseAddress(b []byte) (Message, error) {
	if err := expectLen(b, addressLen); err != nil {
		return nil, err
	}

	return &Address{AddrPort: bin.ParseAddrPort([bin.AddrPortLen]byte(b))}, nil
}

func parseShipUpdate(b []byte) (Message, error) {
	if err := expectLen(b, shipUpdateLen); err != nil {
		return nil, err
	}

	r := &reader{b: b}

	u := &ShipUpdate{}
	u.ID = r.id()
	u.X = r.f32()
	u.Y = r.f32()
	u.Shield = r.flag()

	if r.err != nil {
		return nil, r.err
	}

	return u, nil
}

func parseDeath(b []byte) (Message, error) {
	if err := expectLen(b, deathLen); err != nil {
		return nil, err
	}

	return &Death{ID: uuid.UUID(b)}, nil
}
