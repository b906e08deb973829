// Package renderer ties the generator registry to the template engine.
// A DocumentRenderer registers every generator as a callable template
// function at construction time and then renders templates on demand.
package renderer
