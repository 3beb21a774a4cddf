package browser

// EpochKind selects how a raw stored visit timestamp is interpreted.
type EpochKind int

const (
	// MicrosecondsSince1601 is the Chrome-family epoch (WebKit time).
	MicrosecondsSince1601 EpochKind = iota
	// MicrosecondsSince1970 is the Firefox epoch.
	MicrosecondsSince1970
)

// unixEpochOffsetMillis is the millisecond distance between
// 1601-01-01T00:00:00Z and 1970-01-01T00:00:00Z.
const unixEpochOffsetMillis = 11644473600000

// ToUnixMillis converts a raw stored timestamp to Unix milliseconds.
// Pure arithmetic: a zero or negative raw value (broken rows in the Chrome
// family) converts like any other value, filtering is the caller's job.
func ToUnixMillis(raw int64, epoch EpochKind) int64 {
	switch epoch {
	case MicrosecondsSince1601:
		return raw/1000 - unixEpochOffsetMillis
	default:
		return raw / 1000
	}
}

// FromUnixMillis is the inverse of ToUnixMillis, used to push time bounds
// down into SQL against the raw stored column.
func FromUnixMillis(millis int64, epoch EpochKind) int64 {
	switch epoch {
	case MicrosecondsSince1601:
		return (millis + unixEpochOffsetMillis) * 1000
	default:
		return millis * 1000
	}
}

// Epoch returns the timestamp epoch used by a browser family.
func (k Kind) Epoch() EpochKind {
	if k == Firefox {
		return MicrosecondsSince1970
	}
	return MicrosecondsSince1601
}
