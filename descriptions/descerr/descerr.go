// Package descerr defines the single tagged error kind used across the
// description model, serialization format, accessors, and extension
// protocol. Model, accessor, serialization-validation and extension-run
// errors are an [*Error] wrapping one [Kind] plus the offending
// name/key/value; there is no per-component error type hierarchy to keep
// exhaustive. Version-string parse errors, YAML syntax errors and scratch
// file I/O errors are returned as ordinary wrapped errors instead.
package descerr

import (
	"errors"
	"fmt"
)

// Kind identifies one of the fixed error conditions the core can raise.
type Kind int

const (
	_ Kind = iota
	// KindUnsupportedType indicates a scalar/property type string this
	// core does not recognize.
	KindUnsupportedType
	// KindSubtypeNotFound indicates a name lookup for a subtype failed.
	KindSubtypeNotFound
	// KindEntityNotFound indicates a name lookup for an entity failed.
	KindEntityNotFound
	// KindEntityAddedAtVersionNotFound indicates an entity has neither
	// version history nor a legacy added-at version.
	KindEntityAddedAtVersionNotFound
	// KindEndpointPayloadNotFound indicates a name lookup for an endpoint
	// payload failed.
	KindEndpointPayloadNotFound
	// KindEndpointRequiresAtLeastOnePayload indicates an endpoint has
	// neither a read nor a write payload.
	KindEndpointRequiresAtLeastOnePayload
	// KindEndpointRequiresSeparateReadAndWritePayloads indicates a shared
	// read/write payload carries an http_method, which only separate
	// payloads may specify.
	KindEndpointRequiresSeparateReadAndWritePayloads
	// KindEndpointTestsRequiresAtLeastOneType indicates an endpoint's
	// tests block declared no test variant.
	KindEndpointTestsRequiresAtLeastOneType
	// KindPropertyNotFound indicates a name lookup for a property on a
	// specific entity failed.
	KindPropertyNotFound
	// KindUnsupportedPayloadIdentifier indicates an endpoint payload
	// entity identifier could not be classified.
	KindUnsupportedPayloadIdentifier
	// KindUnsupportedMetadataIdentifier indicates a metadata property
	// identifier could not be classified.
	KindUnsupportedMetadataIdentifier
	// KindUnsupportedNestedKeys indicates a base key / entity key
	// combination this core cannot classify into an initializer type.
	KindUnsupportedNestedKeys
	// KindCouldNotFindTargetEntity indicates a relationship or identifier
	// reference named an entity absent from the aggregate.
	KindCouldNotFindTargetEntity
	// KindSubtypeDoesNotHaveAnyCase indicates a cases-variant subtype
	// declared zero used or unused cases.
	KindSubtypeDoesNotHaveAnyCase
	// KindCannotPersistIdentifier indicates an entity marked persist=true
	// has an identifier shape that cannot be persisted (e.g. void).
	KindCannotPersistIdentifier
	// KindIncompatiblePropertyKey indicates two input forms for the same
	// logical field were both present and disagree (e.g. legacy
	// last_remote_read flag plus an explicit system property).
	KindIncompatiblePropertyKey
	// KindUnsupportedCaseConversion indicates a name transformation was
	// asked to convert a string it cannot parse into word boundaries.
	KindUnsupportedCaseConversion
	// KindExtension wraps a message surfaced by an extension subprocess,
	// either a non-zero exit or an explicit failure response.
	KindExtension
	// KindSystemPropertyNameCollision indicates an entity property's name
	// collides with a reserved system-property name.
	KindSystemPropertyNameCollision
	// KindDataCorrupted indicates a subtype declared none of its three
	// items variants, or another structurally required field was absent.
	KindDataCorrupted
	// KindUnknownType indicates an identifier "type" string matched no
	// known scalar kind and was not "property".
	KindUnknownType
	// KindSubtypePropertyRequiresLogErrorOrDefault indicates a
	// properties-variant subtype property set log_error = false without
	// also supplying a default_value.
	KindSubtypePropertyRequiresLogErrorOrDefault
)

// Error is the single error type returned by every core package. Build one
// with the New* constructors rather than composing Kind and Details by
// hand, so the message template and the Kind stay in sync.
type Error struct {
	Kind    Kind
	Details map[string]string
}

// Error renders a one-line, quoted-value message for the error's kind.
func (e *Error) Error() string {
	d := func(k string) string { return e.Details[k] }

	switch e.Kind {
	case KindUnsupportedType:
		return fmt.Sprintf("unsupported type %q", d("type"))
	case KindSubtypeNotFound:
		return fmt.Sprintf("subtype %q not found", d("name"))
	case KindEntityNotFound:
		return fmt.Sprintf("entity %q not found", d("name"))
	case KindEntityAddedAtVersionNotFound:
		return fmt.Sprintf("entity %q has no added-at version", d("name"))
	case KindEndpointPayloadNotFound:
		return fmt.Sprintf("endpoint payload %q not found", d("name"))
	case KindEndpointRequiresAtLeastOnePayload:
		return fmt.Sprintf("endpoint %q requires at least one payload", d("name"))
	case KindEndpointRequiresSeparateReadAndWritePayloads:
		return fmt.Sprintf("endpoint %q requires separate read and write payloads", d("name"))
	case KindEndpointTestsRequiresAtLeastOneType:
		return "endpoint tests requires at least one type"
	case KindPropertyNotFound:
		return fmt.Sprintf("property %q not found on entity %q", d("name"), d("entity_name"))
	case KindUnsupportedPayloadIdentifier:
		return "unsupported payload identifier"
	case KindUnsupportedMetadataIdentifier:
		return "unsupported metadata identifier"
	case KindUnsupportedNestedKeys:
		return "unsupported nested keys"
	case KindCouldNotFindTargetEntity:
		return "could not find target entity"
	case KindSubtypeDoesNotHaveAnyCase:
		return fmt.Sprintf("subtype %q does not have any case", d("name"))
	case KindCannotPersistIdentifier:
		return fmt.Sprintf("cannot persist identifier of %q", d("name"))
	case KindIncompatiblePropertyKey:
		return fmt.Sprintf("incompatible property key %q", d("key"))
	case KindUnsupportedCaseConversion:
		return "unsupported case conversion"
	case KindExtension:
		return fmt.Sprintf("extension: %s", d("message"))
	case KindSystemPropertyNameCollision:
		return fmt.Sprintf("system property name collision %q", d("name"))
	case KindDataCorrupted:
		return fmt.Sprintf("data corrupted: %s", d("reason"))
	case KindUnknownType:
		return fmt.Sprintf("unknown type %q", d("type"))
	case KindSubtypePropertyRequiresLogErrorOrDefault:
		return fmt.Sprintf("subtype property %q requires %s = true or a default_value", d("name"), d("key"))
	default:
		return "unknown error"
	}
}

func newErr(k Kind, kv ...string) *Error {
	details := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		details[kv[i]] = kv[i+1]
	}

	return &Error{Kind: k, Details: details}
}

// NewUnsupportedType returns a [KindUnsupportedType] error for typ.
func NewUnsupportedType(typ string) *Error { return newErr(KindUnsupportedType, "type", typ) }

// NewSubtypeNotFound returns a [KindSubtypeNotFound] error for name.
func NewSubtypeNotFound(name string) *Error { return newErr(KindSubtypeNotFound, "name", name) }

// NewEntityNotFound returns a [KindEntityNotFound] error for name.
func NewEntityNotFound(name string) *Error { return newErr(KindEntityNotFound, "name", name) }

// NewEntityAddedAtVersionNotFound returns a
// [KindEntityAddedAtVersionNotFound] error for name.
func NewEntityAddedAtVersionNotFound(name string) *Error {
	return newErr(KindEntityAddedAtVersionNotFound, "name", name)
}

// NewEndpointPayloadNotFound returns a [KindEndpointPayloadNotFound] error
// for name.
func NewEndpointPayloadNotFound(name string) *Error {
	return newErr(KindEndpointPayloadNotFound, "name", name)
}

// NewEndpointRequiresAtLeastOnePayload returns a
// [KindEndpointRequiresAtLeastOnePayload] error for name.
func NewEndpointRequiresAtLeastOnePayload(name string) *Error {
	return newErr(KindEndpointRequiresAtLeastOnePayload, "name", name)
}

// NewEndpointRequiresSeparateReadAndWritePayloads returns a
// [KindEndpointRequiresSeparateReadAndWritePayloads] error for name.
func NewEndpointRequiresSeparateReadAndWritePayloads(name string) *Error {
	return newErr(KindEndpointRequiresSeparateReadAndWritePayloads, "name", name)
}

// NewEndpointTestsRequiresAtLeastOneType returns a
// [KindEndpointTestsRequiresAtLeastOneType] error.
func NewEndpointTestsRequiresAtLeastOneType() *Error {
	return newErr(KindEndpointTestsRequiresAtLeastOneType)
}

// NewPropertyNotFound returns a [KindPropertyNotFound] error for name on
// entityName.
func NewPropertyNotFound(entityName, name string) *Error {
	return newErr(KindPropertyNotFound, "entity_name", entityName, "name", name)
}

// NewUnsupportedPayloadIdentifier returns a
// [KindUnsupportedPayloadIdentifier] error.
func NewUnsupportedPayloadIdentifier() *Error {
	return newErr(KindUnsupportedPayloadIdentifier)
}

// NewUnsupportedMetadataIdentifier returns a
// [KindUnsupportedMetadataIdentifier] error.
func NewUnsupportedMetadataIdentifier() *Error {
	return newErr(KindUnsupportedMetadataIdentifier)
}

// NewUnsupportedNestedKeys returns a [KindUnsupportedNestedKeys] error.
func NewUnsupportedNestedKeys() *Error { return newErr(KindUnsupportedNestedKeys) }

// NewCouldNotFindTargetEntity returns a [KindCouldNotFindTargetEntity]
// error.
func NewCouldNotFindTargetEntity() *Error { return newErr(KindCouldNotFindTargetEntity) }

// NewSubtypeDoesNotHaveAnyCase returns a [KindSubtypeDoesNotHaveAnyCase]
// error for name.
func NewSubtypeDoesNotHaveAnyCase(name string) *Error {
	return newErr(KindSubtypeDoesNotHaveAnyCase, "name", name)
}

// NewCannotPersistIdentifier returns a [KindCannotPersistIdentifier] error
// for name.
func NewCannotPersistIdentifier(name string) *Error {
	return newErr(KindCannotPersistIdentifier, "name", name)
}

// NewIncompatiblePropertyKey returns a [KindIncompatiblePropertyKey] error
// for key.
func NewIncompatiblePropertyKey(key string) *Error {
	return newErr(KindIncompatiblePropertyKey, "key", key)
}

// NewUnsupportedCaseConversion returns a [KindUnsupportedCaseConversion]
// error.
func NewUnsupportedCaseConversion() *Error { return newErr(KindUnsupportedCaseConversion) }

// NewExtension returns a [KindExtension] error wrapping message.
func NewExtension(message string) *Error { return newErr(KindExtension, "message", message) }

// NewSystemPropertyNameCollision returns a
// [KindSystemPropertyNameCollision] error for name.
func NewSystemPropertyNameCollision(name string) *Error {
	return newErr(KindSystemPropertyNameCollision, "name", name)
}

// NewDataCorrupted returns a [KindDataCorrupted] error describing reason.
func NewDataCorrupted(reason string) *Error { return newErr(KindDataCorrupted, "reason", reason) }

// NewUnknownType returns a [KindUnknownType] error for typ.
func NewUnknownType(typ string) *Error { return newErr(KindUnknownType, "type", typ) }

// NewSubtypePropertyRequiresLogErrorOrDefault returns a
// [KindSubtypePropertyRequiresLogErrorOrDefault] error for the named
// subtype property, referencing key (normally "log_error").
func NewSubtypePropertyRequiresLogErrorOrDefault(name, key string) *Error {
	return newErr(KindSubtypePropertyRequiresLogErrorOrDefault, "name", name, "key", key)
}

// Of reports whether err is a [*Error] of kind k, unwrapping through any
// wrapper chain via errors.As.
func Of(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == k
}
