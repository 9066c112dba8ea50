package gedcom

import "strings"

// Accessors for INDI records. They read the generic element structure and
// return zero values when a tag is missing.

// NameParts returns the given name and surname. GIVN and SURN children take
// precedence over the NAME value, where the surname sits between slashes
// ("John /Doe/").
func (e *Element) NameParts() (given, surname string) {
	name := e.ChildByTag(TagName)
	if name == nil {
		return "", ""
	}
	given, surname = splitName(name.value)
	if v := name.ChildValue(TagGivenName); v != "" {
		given = v
	}
	if v := name.ChildValue(TagSurname); v != "" {
		surname = v
	}
	return given, surname
}

// Name returns the display name, "given surname".
func (e *Element) Name() string {
	given, surname := e.NameParts()
	return strings.TrimSpace(given + " " + surname)
}

// SetName rewrites the NAME record and its GIVN/SURN children, creating
// them when missing.
func (e *Element) SetName(given, surname string) {
	name := e.ChildByTag(TagName)
	if name == nil {
		name = NewElement(e.level+1, "", TagName, "", e.terminator)
		_ = e.AddChild(name)
	}
	name.SetValue(given + " /" + surname + "/")
	setChildValue(name, TagGivenName, given)
	setChildValue(name, TagSurname, surname)
}

func (e *Element) Gender() string     { return e.ChildValue(TagSex) }
func (e *Element) Occupation() string { return e.ChildValue(TagOccupation) }

// Birth returns the first BIRT event, or nil.
func (e *Element) Birth() *Element { return e.ChildByTag(TagBirth) }

// Death returns the first DEAT event, or nil.
func (e *Element) Death() *Element { return e.ChildByTag(TagDeath) }

// IsDeceased reports whether a death event is recorded.
func (e *Element) IsDeceased() bool { return e.HasTag(TagDeath) }

// EventDate returns the DATE value of an event element such as BIRT.
func (e *Element) EventDate() string { return e.ChildValue(TagDate) }

// EventPlace returns the PLAC value of an event element.
func (e *Element) EventPlace() string { return e.ChildValue(TagPlace) }

// ChildFamilyPointer returns the first FAMC pointer, or "".
func (e *Element) ChildFamilyPointer() string { return e.ChildValue(TagFamilyChild) }

// IsChildInFamily reports whether the individual declares a FAMC link.
func (e *Element) IsChildInFamily() bool { return e.ChildFamilyPointer() != "" }

// SpouseFamilyPointers returns all FAMS pointers in source order.
func (e *Element) SpouseFamilyPointers() []string { return e.childValues(TagFamilySpouse) }

func (e *Element) childValues(tag string) []string {
	var out []string
	for _, c := range e.children {
		if c.tag == tag && c.value != "" {
			out = append(out, c.value)
		}
	}
	return out
}

func splitName(v string) (given, surname string) {
	first := strings.IndexByte(v, '/')
	if first < 0 {
		return strings.TrimSpace(v), ""
	}
	given = v[:first]
	rest := v[first+1:]
	if second := strings.IndexByte(rest, '/'); second >= 0 {
		surname = rest[:second]
		given += " " + rest[second+1:]
	} else {
		surname = rest
	}
	return strings.Join(strings.Fields(given), " "), strings.TrimSpace(surname)
}

func setChildValue(e *Element, tag, value string) {
	if c := e.ChildByTag(tag); c != nil {
		c.SetValue(value)
		return
	}
	_ = e.AddChild(NewElement(e.level+1, "", tag, value, e.terminator))
}
