package descriptions

import (
	"strconv"
	"time"
)

// DefaultValueKind discriminates the [DefaultValue] sum type.
type DefaultValueKind int

const (
	DefaultValueBool DefaultValueKind = iota
	DefaultValueInt
	DefaultValueFloat
	DefaultValueString
	DefaultValueDate
	DefaultValueCurrentDate
	DefaultValueEnumCase
	DefaultValueNil
	DefaultValueSeconds
	DefaultValueMilliseconds
)

// DefaultValue is the sum type for a property's default value: a literal
// of one of the scalar kinds, a current-date marker, an enum case
// reference, an explicit nil, or a duration given in seconds or
// milliseconds. Construct one with the New* functions below.
type DefaultValue struct {
	Kind     DefaultValueKind
	Bool     bool
	Int      int
	Float    float64
	String   string
	Date     time.Time
	EnumCase string
}

func NewDefaultValueBool(v bool) DefaultValue { return DefaultValue{Kind: DefaultValueBool, Bool: v} }
func NewDefaultValueInt(v int) DefaultValue   { return DefaultValue{Kind: DefaultValueInt, Int: v} }

func NewDefaultValueFloat(v float64) DefaultValue {
	return DefaultValue{Kind: DefaultValueFloat, Float: v}
}

func NewDefaultValueString(v string) DefaultValue {
	return DefaultValue{Kind: DefaultValueString, String: v}
}

func NewDefaultValueDate(v time.Time) DefaultValue {
	return DefaultValue{Kind: DefaultValueDate, Date: v}
}

func NewDefaultValueCurrentDate() DefaultValue { return DefaultValue{Kind: DefaultValueCurrentDate} }

func NewDefaultValueEnumCase(name string) DefaultValue {
	return DefaultValue{Kind: DefaultValueEnumCase, EnumCase: name}
}

func NewDefaultValueNil() DefaultValue { return DefaultValue{Kind: DefaultValueNil} }

func NewDefaultValueSeconds(v float64) DefaultValue {
	return DefaultValue{Kind: DefaultValueSeconds, Float: v}
}

func NewDefaultValueMilliseconds(v float64) DefaultValue {
	return DefaultValue{Kind: DefaultValueMilliseconds, Float: v}
}

// CanonicalString renders v into the string form used for equality
// comparisons.
func (v DefaultValue) CanonicalString() string {
	switch v.Kind {
	case DefaultValueBool:
		return strconv.FormatBool(v.Bool)
	case DefaultValueInt:
		return strconv.Itoa(v.Int)
	case DefaultValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case DefaultValueString:
		return v.String
	case DefaultValueDate:
		return v.Date.UTC().Format(time.RFC3339Nano)
	case DefaultValueCurrentDate:
		return "current_date"
	case DefaultValueEnumCase:
		return "." + v.EnumCase
	case DefaultValueNil:
		return "nil"
	case DefaultValueSeconds:
		return strconv.FormatFloat(v.Float, 'g', -1, 64) + "s"
	case DefaultValueMilliseconds:
		return strconv.FormatFloat(v.Float, 'g', -1, 64) + "ms"
	default:
		return ""
	}
}

// Equal reports whether v and o have the same canonical string form.
func (v DefaultValue) Equal(o DefaultValue) bool {
	return v.CanonicalString() == o.CanonicalString()
}
