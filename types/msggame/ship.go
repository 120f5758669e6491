package msggame

import (
	"fmt"
	"slices"

	"github.com/edup2p/orchid/types/bin"
	"github.com/edup2p/orchid/types/entity"
	"github.com/google/uuid"
)

// ShipSnapshot carries a whole ship, only during the loading handshake.
type ShipSnapshot struct {
	Ship entity.Ship
}

func (s *ShipSnapshot) MarshalGameMessage() []byte {
	sh := s.Ship

	payload := slices.Concat(sh.ID[:], []byte{byte(sh.Possession)})
	payload = bin.AppendFloat32s(payload, sh.Pos.X, sh.Pos.Y, sh.Angle)
	payload = append(payload, bin.PutBool(sh.Direction.Valid))
	payload = bin.AppendFloat32s(payload, sh.Direction.Val, sh.Health)
	payload = append(payload, bin.PutBool(sh.Shield))

	return slices.Concat([]byte{byte(v1), byte(ShipSnapshotMessage)}, payload)
}

func (s *ShipSnapshot) Debug() string {
	return fmt.Sprintf("shipsnapshot %s", s.Ship.Debug())
}

func (s *ShipSnapshot) Type() MessageType { return ShipSnapshotMessage }

func (s *ShipSnapshot) sealed() {}

// ShipUpdate is the incremental, periodically broadcast state of a ship.
type ShipUpdate struct {
	ID uuid.UUID

	X, Y float32

	Shield bool
}

func (u *ShipUpdate) MarshalGameMessage() []byte {
	payload := bin.AppendFloat32s(slices.Clone(u.ID[:]), u.X, u.Y)
	payload = append(payload, bin.PutBool(u.Shield))

	return slices.Concat([]byte{byte(v1), byte(ShipUpdateMessage)}, payload)
}

func (u *ShipUpdate) Debug() string {
	return fmt.Sprintf("shipupdate id=%s pos=(%.1f,%.1f) shield=%t", u.ID, u.X, u.Y, u.Shield)
}

func (u *ShipUpdate) Type() MessageType { return ShipUpdateMessage }

func (u *ShipUpdate) sealed() {}
