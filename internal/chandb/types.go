// Package chandb holds the channel database the matching engine resolves
// against: broadcast stations indexed by callsign plus an ordered list of
// premium channels. The database is an immutable snapshot, rebuilt
// wholesale on reload and swapped atomically behind a Store.
package chandb

import "strings"

// ChannelType distinguishes broadcast (OTA, callsign keyed) channels from
// premium/cable channels matched by name.
type ChannelType int

const (
	Premium ChannelType = iota
	Broadcast
)

func (t ChannelType) String() string {
	if t == Broadcast {
		return "broadcast"
	}
	return "premium"
}

// ParseChannelType maps the database "type" field to a ChannelType. Any
// value containing "broadcast" (case-insensitive), including
// "Broadcast (OTA)", selects the broadcast category; everything else is
// premium.
func ParseChannelType(s string) ChannelType {
	t := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(t, "broadcast") {
		return Broadcast
	}
	return Premium
}

// Record is one channel database entry. Records are immutable once loaded.
type Record struct {
	Type     ChannelType
	Name     string // channel name (premium)
	Callsign string // station callsign (broadcast)
	Category string
}
