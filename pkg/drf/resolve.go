package drf

import "strings"

// resolveName applies one optional ".NAME" suffix to the current property
// state. Names are case-folded to uppercase and looked up in two tables:
// a name matching the current kind's field table refines only the field;
// a name matching the property alias table replaces the kind (and resets
// the field to the new kind's default) when the replacement is
// compatible. A Reading qualifier accepts any replacement; every other
// kind accepts only its own. Absence of the suffix leaves the property
// untouched.
//
// The suffix may appear both before and after the range, so the request
// assembler calls this at both positions.
func (s *scanner) resolveName(prop *Property) error {
	if s.peek() != '.' {
		return nil
	}
	dotPos := s.pos
	s.pos++

	namePos := s.pos
	name := strings.ToUpper(s.takeWhile(isNameChar))
	if name == "" {
		return errAt(namePos, "", ErrUnknownName)
	}

	fields := fieldTable(prop.Kind)
	if f, ok := fields[name]; ok {
		prop.Field = f
		return nil
	}

	kind, ok := propertyAliases[name]
	if !ok {
		if fields == nil {
			return errAt(dotPos, name, ErrNoFields)
		}
		return errAt(namePos, name, ErrUnknownName)
	}
	if prop.Kind != Reading && kind != prop.Kind {
		return errAt(namePos, name, ErrPropertyMismatch)
	}

	*prop = defaultProperty(kind)
	return nil
}
