// Package diversion solves Network Diversion on a planar graph: given
// s, t and an edge d=(du,dv), find the cheapest edge set whose removal
// forces every remaining s-t-path through d.
//
// The reduction works in the dual: any s->t path avoiding d crosses a
// sequence of dual edges forming a cut separating d's two faces. Protecting
// those dual edges from subdivision and solving Shortest Odd Path between
// d's left and right face yields a minimum-weight dual path — rotated back
// to real edges, a minimum s-t cut whose removal makes d a bridge. If no
// s->t path avoids d, d already suffices and the diversion set is empty.
package diversion
