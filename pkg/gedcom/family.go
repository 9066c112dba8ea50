package gedcom

// Accessors for FAM records.

func (e *Element) HusbandPointer() string { return e.ChildValue(TagHusband) }
func (e *Element) WifePointer() string    { return e.ChildValue(TagWife) }
func (e *Element) HasHusband() bool       { return e.HusbandPointer() != "" }
func (e *Element) HasWife() bool          { return e.WifePointer() != "" }

// ChildPointers returns the CHIL pointers in source order.
func (e *Element) ChildPointers() []string { return e.childValues(TagChild) }

// MarriageEvent returns the family's first MARR event, or nil.
func (e *Element) MarriageEvent() *Element { return e.ChildByTag(TagMarriage) }
