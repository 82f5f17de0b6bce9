// SPDX-License-Identifier: MIT
// Package converters moves street networks in and out of core.Graph:
//   - gonum/graph, through FromGonum and ToGonum;
//   - YAML edge lists, through DecodeEdgeList and EncodeEdgeList.
//
// Imports are deterministic: nodes and edges are added in ascending ID order
// (gonum) or in document order (YAML), so parallel-edge keys are reproducible.
package converters
