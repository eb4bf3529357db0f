package geo_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/geo"
	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

const departments = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"NOMBDEP": "SQUARE"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[2,0],[2,2],[0,2],[0,0]]]}},
    {"type": "Feature", "properties": {"NOMBDEP": "TWIN"},
     "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[10,0],[11,0],[11,1],[10,1],[10,0]]],
        [[[12,0],[13,0],[13,1],[12,1],[12,0]]]]}},
    {"type": "Feature", "properties": {"code": 7},
     "geometry": {"type": "Point", "coordinates": [-5, 3]}}
  ]
}`

// SitesSuite exercises GeoJSON → site conversion.
type SitesSuite struct {
	suite.Suite
}

func (s *SitesSuite) TestCentroidsAndNames() {
	fc, err := geo.ParseFeatureCollection([]byte(departments))
	require.NoError(s.T(), err)

	sites, err := geo.Sites(fc, geo.SiteOptions{NameProperty: "NOMBDEP"})
	require.NoError(s.T(), err)
	require.Len(s.T(), sites, 3)

	require.Equal(s.T(), "SQUARE", sites[0].Name)
	require.InDelta(s.T(), 1.0, sites[0].Point.X, 1e-12)
	require.InDelta(s.T(), 1.0, sites[0].Point.Y, 1e-12)

	require.Equal(s.T(), "TWIN", sites[1].Name)
	require.InDelta(s.T(), 11.5, sites[1].Point.X, 1e-12) // area-weighted over both parts
	require.InDelta(s.T(), 0.5, sites[1].Point.Y, 1e-12)

	require.Equal(s.T(), "feature-2", sites[2].Name) // missing property
	require.Equal(s.T(), tsp.Point{X: -5, Y: 3}, sites[2].Point)

	require.Equal(s.T(), []string{"SQUARE", "TWIN", "feature-2"}, geo.Names(sites))
	require.Equal(s.T(), sites[2].Point, geo.Points(sites)[2])
}

func (s *SitesSuite) TestProjectionToMercator() {
	fc, err := geo.ParseFeatureCollection([]byte(departments))
	require.NoError(s.T(), err)

	plain, err := geo.Sites(fc, geo.SiteOptions{})
	require.NoError(s.T(), err)
	proj, err := geo.Sites(fc, geo.SiteOptions{Project: true})
	require.NoError(s.T(), err)

	// Mercator x is linear in longitude: R·λ with R=6378137.
	want := 6378137.0 * (-5.0) * math.Pi / 180
	require.InDelta(s.T(), want, proj[2].Point.X, 1e-6)
	require.Greater(s.T(), proj[2].Point.Y, 0.0)

	// Projection must not leak into the parsed collection.
	again, err := geo.Sites(fc, geo.SiteOptions{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), plain, again)
}

func (s *SitesSuite) TestErrors() {
	_, err := geo.Sites(nil, geo.SiteOptions{})
	require.ErrorIs(s.T(), err, geo.ErrEmptyCollection)

	fc, err := geo.ParseFeatureCollection([]byte(`{"type":"FeatureCollection","features":[]}`))
	require.NoError(s.T(), err)
	_, err = geo.Sites(fc, geo.SiteOptions{})
	require.ErrorIs(s.T(), err, geo.ErrEmptyCollection)

	fc, err = geo.ParseFeatureCollection([]byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[0,0]}]}}]}`))
	require.NoError(s.T(), err)
	_, err = geo.Sites(fc, geo.SiteOptions{})
	require.ErrorIs(s.T(), err, geo.ErrUnsupportedGeometry)

	_, err = geo.ParseFeatureCollection([]byte(`not json`))
	require.Error(s.T(), err)
}

func (s *SitesSuite) TestLoadFeatureCollectionFile() {
	path := filepath.Join(s.T().TempDir(), "peru.geojson")
	require.NoError(s.T(), os.WriteFile(path, []byte(departments), 0o644))

	fc, err := geo.LoadFeatureCollection(path)
	require.NoError(s.T(), err)
	require.Len(s.T(), fc.Features, 3)

	_, err = geo.LoadFeatureCollection(filepath.Join(s.T().TempDir(), "missing.geojson"))
	require.Error(s.T(), err)
}

func TestSitesSuite(t *testing.T) {
	suite.Run(t, new(SitesSuite))
}
