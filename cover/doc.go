// Package cover defines the contract every covering strategy implements and
// the shared data model: the filter space, level sets with optional bounds,
// structured index-set keys, and the default neighborhood selector used for
// nerve construction. Concrete strategies live in subpackages (interval,
// ball) and are registered with an external registry through the uniform
// Typename/Params introspection every Cover exposes.
package cover
