package domain

type Platform string

const (
	PlatformLinkedIn Platform = "LinkedIn"
	PlatformX        Platform = "X"
)

func (p Platform) Valid() bool {
	return p == PlatformLinkedIn || p == PlatformX
}
