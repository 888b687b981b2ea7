package descriptions

import "sort"

// Platform is one of the fixed set of targets an entity, property, or
// subtype can be declared available on.
type Platform string

// Recognized platforms. Platform strings are not validated against this
// set: descriptions/serde converts any decoded string to a Platform as-is,
// and an unrecognized value is carried through and re-serialized unchanged.
const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformServer  Platform = "server"
)

// SortedPlatforms returns a sorted copy of ps. Output ordering of
// platforms in re-serialized form is always sorted rather than
// input-order-preserving.
func SortedPlatforms(ps []Platform) []Platform {
	out := make([]Platform, len(ps))
	copy(out, ps)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
