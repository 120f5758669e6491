package msggame

import (
	"fmt"
	"slices"

	"github.com/edup2p/orchid/types/bin"
	"github.com/edup2p/orchid/types/entity"
)

// Bullet is a full bullet snapshot, sent once when it is fired.
type Bullet struct {
	Bullet entity.Bullet
}

func (b *Bullet) MarshalGameMessage() []byte {
	eb := b.Bullet

	payload := []byte{byte(eb.Possession), byte(eb.Kind)}
	payload = bin.AppendFloat32s(payload, eb.Angle, eb.Pos.X, eb.Pos.Y)
	payload = append(payload, bin.PutBool(eb.Hit))

	return slices.Concat([]byte{byte(v1), byte(BulletMessage)}, payload)
}

func (b *Bullet) Debug() string {
	return fmt.Sprintf("bullet %s", b.Bullet.Debug())
}

func (b *Bullet) Type() MessageType { return BulletMessage }

func (b *Bullet) sealed() {}
