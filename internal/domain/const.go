package domain

const (
	// ZeroAddress marks mint sources and burn destinations
	ZeroAddress = "0x0000000000000000000000000000000000000000"
)
