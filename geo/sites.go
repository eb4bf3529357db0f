package geo

import (
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

var (
	// ErrEmptyCollection is returned when a collection has no features.
	ErrEmptyCollection = errors.New("geo: empty feature collection")

	// ErrUnsupportedGeometry is returned for features without a usable geometry.
	ErrUnsupportedGeometry = errors.New("geo: unsupported geometry")
)

// DefaultNameProperty is the feature property read for site labels.
const DefaultNameProperty = "name"

// Site is a labelled point.
type Site struct {
	Name  string
	Point tsp.Point
}

// SiteOptions controls how features become sites.
type SiteOptions struct {
	// NameProperty is the property holding the label (DefaultNameProperty when empty).
	// Features without a string value for it are labelled "feature-<index>".
	NameProperty string

	// Project converts WGS84 lon/lat to Web-Mercator metres before the centroid
	// is taken.
	Project bool
}

// LoadFeatureCollection reads and parses a GeoJSON FeatureCollection file.
func LoadFeatureCollection(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading geojson %s: %w", path, err)
	}

	return ParseFeatureCollection(data)
}

// ParseFeatureCollection parses GeoJSON FeatureCollection bytes.
func ParseFeatureCollection(data []byte) (*geojson.FeatureCollection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing geojson: %w", err)
	}

	return fc, nil
}

// Sites computes one site per feature, in feature order.
func Sites(fc *geojson.FeatureCollection, opts SiteOptions) ([]Site, error) {
	if fc == nil || len(fc.Features) == 0 {
		return nil, ErrEmptyCollection
	}
	key := opts.NameProperty
	if key == "" {
		key = DefaultNameProperty
	}

	sites := make([]Site, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			return nil, fmt.Errorf("feature %d: %w", i, ErrUnsupportedGeometry)
		}
		c, err := centroid(f.Geometry, opts.Project)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		name, ok := f.Properties[key].(string)
		if !ok || name == "" {
			name = fmt.Sprintf("feature-%d", i)
		}
		sites = append(sites, Site{Name: name, Point: tsp.Point{X: c.X(), Y: c.Y()}})
	}

	return sites, nil
}

// centroid returns the planar centroid of g, projected first when asked.
func centroid(g orb.Geometry, toMercator bool) (orb.Point, error) {
	switch g.(type) {
	case orb.Point, orb.MultiPoint, orb.LineString, orb.MultiLineString,
		orb.Ring, orb.Polygon, orb.MultiPolygon, orb.Bound:
	default:
		return orb.Point{}, fmt.Errorf("%s: %w", g.GeoJSONType(), ErrUnsupportedGeometry)
	}
	if toMercator {
		// project.Geometry rewrites coordinates in place; keep the feature intact.
		g = project.Geometry(orb.Clone(g), project.WGS84.ToMercator)
	}
	c, _ := planar.CentroidArea(g)

	return c, nil
}

// Points extracts the coordinates of sites in order.
func Points(sites []Site) []tsp.Point {
	out := make([]tsp.Point, len(sites))
	for i := range sites {
		out[i] = sites[i].Point
	}

	return out
}

// Names extracts the labels of sites in order.
func Names(sites []Site) []string {
	out := make([]string, len(sites))
	for i := range sites {
		out[i] = sites[i].Name
	}

	return out
}
