package hybriddeque

const (
	// the number of slots per block when Options.BlockSize is unset
	DefaultBlockSize = 4

	// a block must hold at least two slots, otherwise the empty state
	// left = CENTER+1 cannot address a valid slot
	MinBlockSize = 2

	DefaultLogMaxSize    = 64 // MB
	DefaultLogMaxBackups = 4
)
