package drf

// Field refines a property to one of its sub-values. Which fields are
// valid depends on the property kind; the per-kind tables below are the
// authority. FieldNone marks kinds that carry no sub-field.
type Field uint8

const (
	FieldNone Field = iota
	FieldRaw
	FieldPrimary
	FieldScaled
	FieldAll
	FieldText
	FieldExtText
	FieldOn
	FieldReady
	FieldRemote
	FieldPositive
	FieldRamp
	FieldMin
	FieldMax
	FieldNom
	FieldTol
	FieldRawMin
	FieldRawMax
	FieldRawNom
	FieldRawTol
	FieldEnable
	FieldStatus
	FieldTriesNeeded
	FieldTriesNow
	FieldFTD
	FieldAbort
	FieldAbortInhibit
	FieldFlags
	FieldMask
)

// String returns the canonical keyword for the field. FieldNone renders
// as the empty string.
func (f Field) String() string {
	switch f {
	case FieldRaw:
		return "RAW"
	case FieldPrimary:
		return "PRIMARY"
	case FieldScaled:
		return "SCALED"
	case FieldAll:
		return "ALL"
	case FieldText:
		return "TEXT"
	case FieldExtText:
		return "EXT_TEXT"
	case FieldOn:
		return "ON"
	case FieldReady:
		return "READY"
	case FieldRemote:
		return "REMOTE"
	case FieldPositive:
		return "POSITIVE"
	case FieldRamp:
		return "RAMP"
	case FieldMin:
		return "MIN"
	case FieldMax:
		return "MAX"
	case FieldNom:
		return "NOM"
	case FieldTol:
		return "TOL"
	case FieldRawMin:
		return "RAW_MIN"
	case FieldRawMax:
		return "RAW_MAX"
	case FieldRawNom:
		return "RAW_NOM"
	case FieldRawTol:
		return "RAW_TOL"
	case FieldEnable:
		return "ENABLE"
	case FieldStatus:
		return "STATUS"
	case FieldTriesNeeded:
		return "TRIES_NEEDED"
	case FieldTriesNow:
		return "TRIES_NOW"
	case FieldFTD:
		return "FTD"
	case FieldAbort:
		return "ABORT"
	case FieldAbortInhibit:
		return "ABORT_INHIBIT"
	case FieldFlags:
		return "FLAGS"
	case FieldMask:
		return "MASK"
	default:
		return ""
	}
}

// scalingFields is shared by Reading and Setting. COMMON and VOLTS are
// aliases for the scaled and primary transforms.
var scalingFields = map[string]Field{
	"COMMON":  FieldScaled,
	"PRIMARY": FieldPrimary,
	"RAW":     FieldRaw,
	"SCALED":  FieldScaled,
	"VOLTS":   FieldPrimary,
}

var statusFields = map[string]Field{
	"ALL":      FieldAll,
	"EXT_TEXT": FieldExtText,
	"ON":       FieldOn,
	"POSITIVE": FieldPositive,
	"RAMP":     FieldRamp,
	"RAW":      FieldRaw,
	"READY":    FieldReady,
	"REMOTE":   FieldRemote,
	"TEXT":     FieldText,
}

var analogFields = map[string]Field{
	"ABORT":         FieldAbort,
	"ABORT_INH":     FieldAbortInhibit,
	"ABORT_INHIBIT": FieldAbortInhibit,
	"ALARM_ABORT":   FieldAbort,
	"ALARM_ENABLE":  FieldEnable,
	"ALARM_FLAGS":   FieldFlags,
	"ALARM_FTD":     FieldFTD,
	"ALARM_STATUS":  FieldStatus,
	"ALL":           FieldAll,
	"ENABLE":        FieldEnable,
	"FLAGS":         FieldFlags,
	"FTD":           FieldFTD,
	"MAX":           FieldMax,
	"MAXIMUM":       FieldMax,
	"MIN":           FieldMin,
	"MINIMUM":       FieldMin,
	"NOM":           FieldNom,
	"NOMINAL":       FieldNom,
	"RAW":           FieldRaw,
	"RAW_MAX":       FieldRawMax,
	"RAW_MIN":       FieldRawMin,
	"RAW_NOM":       FieldRawNom,
	"RAW_TOL":       FieldRawTol,
	"STATUS":        FieldStatus,
	"TEXT":          FieldText,
	"TOL":           FieldTol,
	"TOLERANCE":     FieldTol,
	"TRIES_NEEDED":  FieldTriesNeeded,
	"TRIES_NOW":     FieldTriesNow,
	"TRYS_NEEDED":   FieldTriesNeeded,
}

var digitalFields = map[string]Field{
	"ABORT":         FieldAbort,
	"ABORT_INH":     FieldAbortInhibit,
	"ABORT_INHIBIT": FieldAbortInhibit,
	"ALARM_ENABLE":  FieldEnable,
	"ALARM_STATUS":  FieldStatus,
	"ALL":           FieldAll,
	"ENABLE":        FieldEnable,
	"FLAGS":         FieldFlags,
	"FTD":           FieldFTD,
	"MASK":          FieldMask,
	"NOM":           FieldNom,
	"NOMINAL":       FieldNom,
	"RAW":           FieldRaw,
	"STATUS":        FieldStatus,
	"TEXT":          FieldText,
	"TRIES_NEEDED":  FieldTriesNeeded,
	"TRIES_NOW":     FieldTriesNow,
}

// fieldTable returns the field-name table for a property kind, or nil for
// kinds without fields.
func fieldTable(k PropertyKind) map[string]Field {
	switch k {
	case Reading, Setting:
		return scalingFields
	case Status:
		return statusFields
	case Analog:
		return analogFields
	case Digital:
		return digitalFields
	default:
		return nil
	}
}
