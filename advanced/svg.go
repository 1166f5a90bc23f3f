package advanced

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// LoadSVGPolygons reads every <polygon> element of an SVG document, in document
// order. This is not a full SVG reader: transforms, paths and the rest of the
// format are ignored, and points are taken exactly as written, with SVG's
// downward Y axis.
func LoadSVGPolygons(r io.Reader) (PolygonList, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	if rootEl == nil {
		return nil, errors.New("no svg element found")
	}

	var list PolygonList
	for i, polygonEl := range rootEl.FindAll("polygon") {
		points, err := parseSVGPoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		list = append(list, Polygon{Points: points})
	}
	if len(list) == 0 {
		return nil, errors.New("no polygons found in svg")
	}
	return list, nil
}

// SVG allows the numbers of a points attribute to be separated by commas,
// whitespace, or both.
func parseSVGPoints(attribute string) ([]Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attribute)
	}

	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}
