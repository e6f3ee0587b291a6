package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// GroundTag marks surfaces whose contact restores the dash.
type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()
