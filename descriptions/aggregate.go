package descriptions

import (
	"sort"

	"github.com/lucidgen/core/version"
)

// ModelMappingHistory returns the set of versions derived from every
// entity's version_history: for each entity version V that is not that
// entity's added-at version, the greatest version W in
// allVersions such that W < V, W is a release (beta or app store), and W
// is not a matching release of V. The result is deduplicated and sorted
// descending.
func (d *Descriptions) ModelMappingHistory(allVersions []version.Version) []version.Version {
	seen := map[string]version.Version{}

	for i := range d.Entities {
		e := &d.Entities[i]

		addedAt := e.AddedAtVersion()

		for _, item := range e.VersionHistory {
			if addedAt != nil && item.Version.Equal(*addedAt) {
				continue
			}

			if w, ok := greatestPriorRelease(allVersions, item.Version); ok {
				seen[w.String()+"|"+w.Tag.String()] = w
			}
		}
	}

	out := make([]version.Version, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[j].Less(out[i]) })

	return out
}

func greatestPriorRelease(allVersions []version.Version, v version.Version) (version.Version, bool) {
	var (
		best  version.Version
		found bool
	)

	for _, w := range allVersions {
		if !w.Less(v) {
			continue
		}

		if w.Tag != version.TagReleaseBeta && w.Tag != version.TagReleaseAppStore {
			continue
		}

		if w.IsMatchingRelease(v) {
			continue
		}

		if !found || best.Less(w) {
			best = w
			found = true
		}
	}

	return best, found
}

// canonicalMainQueueName is the client queue every descriptions tree
// implicitly carries, regardless of whether any entity names it.
const canonicalMainQueueName = "main"

// ClientQueueNames returns the union of every entity's ClientQueueName
// with the canonical "main" queue, sorted with "main" first and the rest
// lexicographic.
func (d *Descriptions) ClientQueueNames() []string {
	set := map[string]bool{canonicalMainQueueName: true}

	for i := range d.Entities {
		if name := d.Entities[i].ClientQueueName; name != "" {
			set[name] = true
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if names[i] == canonicalMainQueueName {
			return names[j] != canonicalMainQueueName
		}

		if names[j] == canonicalMainQueueName {
			return false
		}

		return names[i] < names[j]
	})

	return names
}

// EndpointsWithMergeableIdentifiers returns every endpoint whose write
// payload refers to a mutable entity (any property with Mutable = true),
// ordered by the endpoint's name.
func (d *Descriptions) EndpointsWithMergeableIdentifiers() ([]*EndpointPayload, error) {
	var out []*EndpointPayload

	for i := range d.Endpoints {
		ep := &d.Endpoints[i]
		if ep.WritePayload == nil {
			continue
		}

		entity, err := d.Entity(ep.WritePayload.Entity.EntityName)
		if err != nil {
			return nil, err
		}

		if entityHasMutableProperty(entity) {
			out = append(out, ep)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func entityHasMutableProperty(e *Entity) bool {
	for _, p := range e.Properties {
		if p.Mutable {
			return true
		}
	}

	return false
}
