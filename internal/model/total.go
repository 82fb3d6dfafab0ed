package model

// Total is the measured allocated size of one root path.
// Blocks is in 512-byte units, as reported by the stat family.
type Total struct {
	Path   string `json:"path"`
	Blocks int64  `json:"blocks"`
}

// KUnits returns the total in 1024-byte units, the unit du reports by default.
func (t Total) KUnits() int64 {
	return t.Blocks / 2
}

// Bytes returns the total in bytes.
func (t Total) Bytes() int64 {
	return t.Blocks * 512
}
