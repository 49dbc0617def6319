package team

import "time"

type Kind string

const (
	KindPalette  Kind = "palette"
	KindCleaning Kind = "cleaning"
	KindGeneral  Kind = "general"
)

func (k Kind) Valid() bool {
	return k == KindPalette || k == KindCleaning || k == KindGeneral
}

// Team is roster reference data: rosters point at one palette team and
// one cleaning team per date.
type Team struct {
	ID        string
	Name      string
	Kind      Kind
	CreatedAt time.Time
	UpdatedAt time.Time
}
