// Package table holds the generic tabular presenter shared by every console
// view: column descriptors, sort state, ordering, pagination, filtering and a
// stateless projection of rows onto header and body cells.
//
// Nothing in this package keeps state between calls. Views own a State value
// and feed it back in on every render.
package table
