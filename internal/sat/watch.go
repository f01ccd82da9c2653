package sat

// watch records that clause Ref currently watches the literal it is
// filed under (one of the clause's first two positions). Blocker is a
// literal of the clause that, if currently true, lets propagation skip
// the clause without inspecting it any further.
type watch struct {
	Ref     ClauseRef
	Blocker Literal
}

// equal compares watches by clause reference only; the blocker is purely
// advisory and does not participate in identity.
func (w watch) equal(other watch) bool {
	return w.Ref == other.Ref
}
