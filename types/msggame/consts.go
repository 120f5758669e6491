package msggame

import "fmt"

// Magic is the 4 byte header of all plain game datagrams
// "🚀"
// F0 9F 9A 80
var Magic = string(MagicBytes)

var MagicBytes = []byte{0xF0, 0x9F, 0x9A, 0x80}

// SealedMagic is the 4 byte header of datagrams sealed with a room key
// "🔒"
// F0 9F 94 92
var SealedMagic = string(SealedMagicBytes)

var SealedMagicBytes = []byte{0xF0, 0x9F, 0x94, 0x92}

type VersionMarker byte

const v1 = VersionMarker(0x1)

type MessageType byte

const (
	BulletMessage       = MessageType(0x00)
	ShipSnapshotMessage = MessageType(0x01)
	AddressMessage      = MessageType(0x02)
	ShipUpdateMessage   = MessageType(0x03)
	ConnectMessage      = MessageType(0x04)
	StartMessage        = MessageType(0x05)
	RestartMessage      = MessageType(0x06)
	WinMessage          = MessageType(0x07)
	DeathMessage        = MessageType(0x08)
)

var messageTypeNames = map[MessageType]string{
	BulletMessage:       "bullet",
	ShipSnapshotMessage: "shipsnapshot",
	AddressMessage:      "address",
	ShipUpdateMessage:   "shipupdate",
	ConnectMessage:      "connect",
	StartMessage:        "start",
	RestartMessage:      "restart",
	WinMessage:          "win",
	DeathMessage:        "death",
}

func (t MessageType) String() string {
	if n, ok := messageTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("type(0x%02x)", byte(t))
}

// Fixed payload sizes, after the version and type bytes.
const (
	bulletLen       = 1 + 1 + 3*4 + 1
	shipSnapshotLen = 16 + 1 + 3*4 + 1 + 4 + 4 + 1
	addressLen      = 18
	shipUpdateLen   = 16 + 2*4 + 1
	deathLen        = 16

	headerLen = 2
)
