package component

// WorldBlock marks a solid block of level geometry. Hit counters grow on
// every begin contact of the matching fixture.
type WorldBlock struct {
	Name     string
	FeetHits int
	SideHits int
	HeadHits int
}

var WorldBlockComponent = NewComponent[WorldBlock]()
