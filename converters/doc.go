// Package converters connects bellmanford to the outside world:
//
//   - Labels maps human-readable vertex names to matrix indices and back.
//     It is a display convenience; the engine itself only knows indices.
//   - FormatPath / FormatCycle render results as text lines.
//   - FromGraph imports a dominikbraun/graph graph as a matrix.Adjacency.
//   - WriteDOT renders a graph with its shortest-path tree (or negative cycle)
//     highlighted, via dominikbraun/graph/draw.
//   - ToGonum exports a matrix.Adjacency as a gonum/graph weighted digraph.
package converters
