package descriptions

// PropertyTypeKind discriminates the [PropertyType] sum type.
type PropertyTypeKind int

const (
	PropertyTypeScalar PropertyTypeKind = iota
	PropertyTypeRelationship
	PropertyTypeSubtype
	PropertyTypeArray
	// PropertyTypeDictionary is only valid on a SubtypeProperty's type:
	// subtype properties allow an additional dictionary(key, value) case
	// that entity properties don't; descriptions/serde rejects it
	// elsewhere.
	PropertyTypeDictionary
)

// PropertyType is the sum type describing the shape of a property's value.
// Arrays may nest arbitrarily (array of array of scalar, etc.).
type PropertyType struct {
	Kind         PropertyTypeKind
	Scalar       ScalarKind
	Relationship Relationship
	SubtypeName  string
	Element      *PropertyType // Array
	DictKey      ScalarKind    // Dictionary
	DictValue    *PropertyType // Dictionary
}

func NewPropertyTypeScalar(kind ScalarKind) PropertyType {
	return PropertyType{Kind: PropertyTypeScalar, Scalar: kind}
}

func NewPropertyTypeRelationship(rel Relationship) PropertyType {
	return PropertyType{Kind: PropertyTypeRelationship, Relationship: rel}
}

func NewPropertyTypeSubtype(name string) PropertyType {
	return PropertyType{Kind: PropertyTypeSubtype, SubtypeName: name}
}

func NewPropertyTypeArray(element PropertyType) PropertyType {
	return PropertyType{Kind: PropertyTypeArray, Element: &element}
}

func NewPropertyTypeDictionary(key ScalarKind, value PropertyType) PropertyType {
	return PropertyType{Kind: PropertyTypeDictionary, DictKey: key, DictValue: &value}
}

// IsRelationship reports whether t is, at its outermost level, a
// relationship (not inside an array).
func (t PropertyType) IsRelationship() bool { return t.Kind == PropertyTypeRelationship }

// LeafScalar unwraps any number of Array layers and reports the innermost
// ScalarKind, if the leaf is a scalar.
func (t PropertyType) LeafScalar() (ScalarKind, bool) {
	for t.Kind == PropertyTypeArray {
		t = *t.Element
	}

	if t.Kind == PropertyTypeScalar {
		return t.Scalar, true
	}

	return 0, false
}
