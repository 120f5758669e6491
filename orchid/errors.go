package orchid

import "errors"

var (
	// ErrSendFailure wraps the error of a single datagram that could not be sent to a peer.
	ErrSendFailure = errors.New("send failure")

	// ErrNoDataAvailable is returned by Transport.TryRecv when nothing is pending.
	ErrNoDataAvailable = errors.New("no data available")

	// ErrInvalidPeerAddress is returned when the host address of a joining peer can't be parsed.
	ErrInvalidPeerAddress = errors.New("invalid peer address")

	// ErrZeroRoomKey is returned for an all-zero room key, which can't seal anything.
	ErrZeroRoomKey = errors.New("zero room key")
)
