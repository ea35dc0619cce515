package drf

// PropertyKind is the category of data a request addresses.
type PropertyKind uint8

const (
	Reading PropertyKind = iota
	Setting
	Status
	Control
	Analog
	Digital
	Description
	Index
	LongName
	AlarmList
)

// String returns the canonical keyword for the property kind.
func (k PropertyKind) String() string {
	switch k {
	case Reading:
		return "READING"
	case Setting:
		return "SETTING"
	case Status:
		return "STATUS"
	case Control:
		return "CONTROL"
	case Analog:
		return "ANALOG"
	case Digital:
		return "DIGITAL"
	case Description:
		return "DESCRIPTION"
	case Index:
		return "INDEX"
	case LongName:
		return "LONG_NAME"
	case AlarmList:
		return "ALARM_LIST_NAME"
	default:
		return "UNKNOWN"
	}
}

// HasFields reports whether the kind carries a sub-field refinement.
// Control, Description, Index, LongName, and AlarmList do not.
func (k PropertyKind) HasFields() bool {
	switch k {
	case Reading, Setting, Status, Analog, Digital:
		return true
	}
	return false
}

// DefaultField returns the designated default field for a property kind,
// or FieldNone for kinds without fields.
func DefaultField(k PropertyKind) Field {
	switch k {
	case Reading, Setting:
		return FieldScaled
	case Status, Analog, Digital:
		return FieldAll
	default:
		return FieldNone
	}
}

// Property identifies the category of data being addressed plus, for the
// field-bearing kinds, the sub-field refinement. The zero Field is
// FieldNone and only appears on fieldless kinds.
type Property struct {
	Kind  PropertyKind
	Field Field
}

// defaultProperty builds a property with the kind's default field.
func defaultProperty(k PropertyKind) Property {
	return Property{Kind: k, Field: DefaultField(k)}
}

// propertyAliases maps every accepted property name to its kind. Aliases
// follow the historical console program names (PRREAD, PRBSTS, ...)
// alongside the modern spellings.
var propertyAliases = map[string]PropertyKind{
	"AA":              Analog,
	"ALARM_LIST_NAME": AlarmList,
	"ANALOG":          Analog,
	"ANALOG_ALARM":    Analog,
	"BASIC_CONTROL":   Control,
	"BASIC_STATUS":    Status,
	"CONTROL":         Control,
	"CTRL":            Control,
	"DA":              Digital,
	"DESC":            Description,
	"DESCRIPTION":     Description,
	"DIGITAL":         Digital,
	"DIGITAL_ALARM":   Digital,
	"INDEX":           Index,
	"LNGNAM":          LongName,
	"LONG_NAME":       LongName,
	"LSTNAM":          AlarmList,
	"PRALNM":          AlarmList,
	"PRANAB":          Analog,
	"PRBCTL":          Control,
	"PRBSTS":          Status,
	"PRDABL":          Digital,
	"PRDESC":          Description,
	"PRLNAM":          LongName,
	"PRREAD":          Reading,
	"PRSET":           Setting,
	"READ":            Reading,
	"READING":         Reading,
	"SET":             Setting,
	"SETTING":         Setting,
	"STATUS":          Status,
	"STS":             Status,
}
