// Package generator defines the named value generators a template can
// call and the registry that holds them.
//
// Core generators (date, now, hash, random_value, chance, randomint,
// uuid) implement their own argument handling; the ~45 fake-data
// generators are declared as table rows mapping a name to a fake.Category
// and share one adapter. The registry is built once at renderer
// construction and is read-only afterwards, so it is safely shared
// across concurrent renders.
package generator
