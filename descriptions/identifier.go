package descriptions

// IdentifierTypeKind discriminates the [IdentifierType] sum type.
type IdentifierTypeKind int

const (
	IdentifierTypeVoid IdentifierTypeKind = iota
	IdentifierTypeScalar
	IdentifierTypeRelationships
	IdentifierTypeProperty
)

// IdentifierType is the sum type describing what an entity's identifier is
// shaped like: void, a scalar, a set of to-many relationship targets, or a
// reference to one of the entity's own properties.
type IdentifierType struct {
	Kind            IdentifierTypeKind
	ScalarKind      ScalarKind       // valid for Scalar and Relationships
	RelationshipIDs []RelationshipID // valid for Relationships
	PropertyName    string           // valid for Property
}

func NewIdentifierTypeVoid() IdentifierType {
	return IdentifierType{Kind: IdentifierTypeVoid}
}

func NewIdentifierTypeScalar(kind ScalarKind) IdentifierType {
	return IdentifierType{Kind: IdentifierTypeScalar, ScalarKind: kind}
}

func NewIdentifierTypeRelationships(kind ScalarKind, ids []RelationshipID) IdentifierType {
	return IdentifierType{Kind: IdentifierTypeRelationships, ScalarKind: kind, RelationshipIDs: ids}
}

func NewIdentifierTypeProperty(name string) IdentifierType {
	return IdentifierType{Kind: IdentifierTypeProperty, PropertyName: name}
}

// EntityIdentifier is an entity's identifying key.
type EntityIdentifier struct {
	Key                      string // default "id"
	IdentifierType           IdentifierType
	EquivalentIdentifierName string
	ObjC                     bool
	Atomic                   *bool // nil means unset/default
}

// DefaultIdentifierKey is the default value of [EntityIdentifier.Key] when
// absent from the input.
const DefaultIdentifierKey = "id"
