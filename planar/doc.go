// Package planar builds embedded planar graphs from a straight-line vertex
// placement and exposes both the real graph and its dual.
//
// Construction happens in two stages, matching the teacher's pre-built /
// finalized split seen across this module (compare graph.New versus
// graph.Parse): a PreGraph collects vertices, points and edges as they are
// read, then Planarize sorts each vertex's incident edges clockwise by
// polar angle and walks faces to assign every directed half-edge a left
// and right face id. The result is a Graph holding both the real
// UndirectedGraph[W, graph.PlanarEdge[W]] and its dual, built edge-by-edge
// via graph.PlanarEdge.RotateRight.
package planar
