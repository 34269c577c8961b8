package messages

// JoinRequest is sent by a client after connecting to announce its ship.
type JoinRequest struct {
	Version    string
	PeerID     string
	PlayerName string
}

// JoinRejected is sent by the server when a client's version does not match.
type JoinRejected struct {
	Reason string
}
