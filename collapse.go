package proofpad

// CollapseMap tracks per-message collapsed state keyed by message
// index. Indices not present read as expanded. Auto-collapse on reveal
// completion only ever sets true; a user toggle afterwards wins because
// toggles operate on the stored value.
type CollapseMap map[int]bool

// NewCollapseMap returns an empty CollapseMap.
func NewCollapseMap() CollapseMap { return make(CollapseMap) }

// Toggle flips the collapsed state for index.
func (m CollapseMap) Toggle(index int) { m[index] = !m[index] }

// IsCollapsed reports whether index is collapsed, defaulting to false.
func (m CollapseMap) IsCollapsed(index int) bool { return m[index] }

// SetCollapsed sets the collapsed state for index explicitly.
func (m CollapseMap) SetCollapsed(index int, collapsed bool) { m[index] = collapsed }
