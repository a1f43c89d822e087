// Command export writes test case definitions to JSON for the Python reference generator.
// Run from the shapemask module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/shapemask/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name  string         `json:"name"`
	Size  int            `json:"size"`
	Shape map[string]any `json:"shape"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	shape := map[string]any{}
	switch s := tc.Shape.(type) {
	case testcases.Polygon:
		shape["kind"] = "polygon"
		pts := make([][2]int, len(s.Points))
		for i, p := range s.Points {
			pts[i] = pointToJSON(p)
		}
		shape["points"] = pts
	case testcases.Rectangle:
		shape["kind"] = "rectangle"
		shape["width"] = s.Width
		shape["height"] = s.Height
		shape["origin"] = pointToJSON(s.Origin)
	case testcases.Regular:
		shape["kind"] = "regular"
		shape["vertices"] = s.Vertices
		setOptional(shape, "radius", s.Radius, s.Center, s.Angle)
	case testcases.Star:
		shape["kind"] = "star"
		shape["points"] = s.Points
		if s.OuterRadius != 0 {
			shape["outer_radius"] = s.OuterRadius
		}
		if s.InnerRadius != 0 {
			shape["inner_radius"] = s.InnerRadius
		}
		setOptional(shape, "", 0, s.Center, s.Angle)
	}

	return jsonTestCase{
		Name:  category + "_" + tc.Name,
		Size:  tc.Size,
		Shape: shape,
	}
}

// setOptional stores the parameters which the reference generator
// defaults when they are absent.
func setOptional(shape map[string]any, radiusKey string, radius int, center *image.Point, angle float64) {
	if radiusKey != "" && radius != 0 {
		shape[radiusKey] = radius
	}
	if center != nil {
		shape["center"] = pointToJSON(*center)
	}
	if angle != 0 {
		shape["angle"] = angle
	}
}

func pointToJSON(p image.Point) [2]int {
	return [2]int{p.X, p.Y}
}
