// SPDX-License-Identifier: MIT
// Package gridgraph treats a 2D raster as a street map: walkable cells are
// corners and neighbouring corners are joined by streets.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a walkable Threshold.
//   - ParseMap reads a text map of '.' corners and '#' blocked cells.
//   - ToCoreGraph builds the core.Graph that routefinder plans on.
//
// Complexity:
//
//   - NewGridGraph: O(W×H).
//   - ToCoreGraph:  O(W×H×d + E), d = 2 (Conn4) or 4 (Conn8) forward neighbours.
//
// Options:
//
//   - GridOptions.Threshold:   minimum value considered walkable.
//   - GridOptions.Conn:        Conn4 (4-neighbours) or Conn8 (8-neighbours).
//   - GridOptions.BlockLength: length of an orthogonal street.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed raster.
//   - ErrBadCell: unknown character in a text map.
//   - ErrBadBlockLength: negative or non-finite block length.
package gridgraph
