package descriptions

import (
	"sync"

	"github.com/lucidgen/core/descriptions/descerr"
	"github.com/lucidgen/core/version"
)

// ElementKind identifies which of the three named element kinds a lookup
// targets.
type ElementKind int

const (
	ElementSubtype ElementKind = iota
	ElementEntity
	ElementEndpoint
)

// Descriptions is the root container: ordered element sequences, the
// target triple, and the description-format version, plus three lazily
// built name->element indexes.
//
// Build one via descriptions/serde.Decode; once built it is immutable and
// safe for concurrent reads, including concurrent first-time index builds
// (guarded by sync.Once).
type Descriptions struct {
	Subtypes  []Subtype
	Entities  []Entity
	Endpoints []EndpointPayload
	Targets   Targets
	Version   version.Version

	subtypeIndexOnce  sync.Once
	entityIndexOnce   sync.Once
	endpointIndexOnce sync.Once
	subtypeIndex      map[string]*Subtype
	entityIndex       map[string]*Entity
	endpointIndex     map[string]*EndpointPayload
}

func (d *Descriptions) buildSubtypeIndex() {
	d.subtypeIndexOnce.Do(func() {
		idx := make(map[string]*Subtype, len(d.Subtypes))
		for i := range d.Subtypes {
			idx[d.Subtypes[i].Name] = &d.Subtypes[i]
		}

		d.subtypeIndex = idx
	})
}

func (d *Descriptions) buildEntityIndex() {
	d.entityIndexOnce.Do(func() {
		idx := make(map[string]*Entity, len(d.Entities))
		for i := range d.Entities {
			idx[d.Entities[i].Name] = &d.Entities[i]
		}

		d.entityIndex = idx
	})
}

func (d *Descriptions) buildEndpointIndex() {
	d.endpointIndexOnce.Do(func() {
		idx := make(map[string]*EndpointPayload, len(d.Endpoints))
		for i := range d.Endpoints {
			idx[d.Endpoints[i].Name] = &d.Endpoints[i]
		}

		d.endpointIndex = idx
	})
}

// Subtype returns the subtype named name.
func (d *Descriptions) Subtype(name string) (*Subtype, error) {
	d.buildSubtypeIndex()

	s, ok := d.subtypeIndex[name]
	if !ok {
		return nil, descerr.NewSubtypeNotFound(name)
	}

	return s, nil
}

// Entity returns the entity named name.
func (d *Descriptions) Entity(name string) (*Entity, error) {
	d.buildEntityIndex()

	e, ok := d.entityIndex[name]
	if !ok {
		return nil, descerr.NewEntityNotFound(name)
	}

	return e, nil
}

// Endpoint returns the endpoint payload named name.
func (d *Descriptions) Endpoint(name string) (*EndpointPayload, error) {
	d.buildEndpointIndex()

	e, ok := d.endpointIndex[name]
	if !ok {
		return nil, descerr.NewEndpointPayloadNotFound(name)
	}

	return e, nil
}

// Lookup resolves name within the given element kind, for callers that
// don't statically know which kind they need.
func (d *Descriptions) Lookup(name string, kind ElementKind) (any, error) {
	switch kind {
	case ElementSubtype:
		return d.Subtype(name)
	case ElementEntity:
		return d.Entity(name)
	case ElementEndpoint:
		return d.Endpoint(name)
	default:
		return nil, descerr.NewDataCorrupted("unknown element kind")
	}
}
