package constants

import "time"

// Frame Loop Timing
const (
	// FrameGate is the minimum interval between two processed frames (~60 FPS ceiling)
	FrameGate = 16 * time.Millisecond

	// HostRefreshInterval is the terminal host refresh tick, faster than the gate
	// so the gate decides which frames are processed
	HostRefreshInterval = 8 * time.Millisecond

	// EventQueueSize is the buffered capacity of the host input channel
	EventQueueSize = 256
)

// Terminal Cell Geometry
// Fields work in virtual pixels; the terminal surface maps one cell to CellWidth x CellHeight
const (
	CellWidth  = 8
	CellHeight = 16
)

// Snapshot Defaults
const (
	SnapshotWidth  = 1280
	SnapshotHeight = 720
	SnapshotFrames = 240
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "backdrop.log"
)
