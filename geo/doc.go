// Package geo turns geographic input into the plain labelled points the
// annealing core consumes.
//
// Two sources are supported:
//
//   - GeoJSON feature collections: every feature contributes one site at the
//     planar centroid of its geometry (polygons and multipolygons are weighted
//     by area, points pass through). Geometries can optionally be projected to
//     Web-Mercator metres before measuring, so distances come out in metres
//     instead of degrees. Projection accuracy is not a goal here.
//
//   - YAML point lists: {name, x, y} records used verbatim.
//
// Labels are carried alongside the points for display only; the solver
// never sees them.
package geo
