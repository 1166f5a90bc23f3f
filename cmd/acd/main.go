package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/acd/advanced"
)

// Demo of approximate convex decomposition. Input on stdin should be newline
// separated points in the form "x y", with each polygon separated by an extra
// newline. Alternatively, --svg reads every <polygon> from an SVG file.
//
// Every input polygon is decomposed, and the pieces of all of them are written
// one per line to --out (stdout by default). A summary goes to stderr.
//
// Polygons should be simple and have no holes. This is not validated.
var (
	app = kingpin.New("acd", "Approximate convex decomposition of simple polygons.")

	tolerance         = app.Flag("tolerance", "Largest concavity allowed in an output piece.").Short('t').Default("1").Envar("ACD_TOLERANCE").Float64()
	concavityWeight   = app.Flag("concavity-weight", "Weight of a candidate's concavity when scoring diagonals.").Default("0.1").Envar("ACD_CONCAVITY_WEIGHT").Float64()
	distanceOffset    = app.Flag("distance-offset", "Added to a diagonal's length when scoring it.").Default("1").Envar("ACD_DISTANCE_OFFSET").Float64()
	parallelThreshold = app.Flag("parallel-threshold", "Split polygons with at least this many vertices concurrently (0 disables).").Default("0").Envar("ACD_PARALLEL_THRESHOLD").Int()
	svgPath           = app.Flag("svg", "Read polygons from an SVG file instead of stdin.").ExistingFile()
	outPath           = app.Flag("out", "Write the pieces to this file instead of stdout.").Short('o').String()
	pngPath           = app.Flag("png", "Render the pieces to this PNG file.").String()
	scale             = app.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64()
	show              = app.Flag("show", "Print the rendered pieces inline (iTerm only).").Bool()
	verbose           = app.Flag("verbose", "Log every split.").Short('v').Bool()
	noColor           = app.Flag("no-color", "Disable colored summary output.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	app.FatalIfError(err, "creating logger")

	os.Exit(run(logger, os.Stdin, os.Stdout, os.Stderr))
}

// run does everything but flag parsing, and returns the exit status. The
// logger is flushed before returning, since os.Exit skips deferred calls.
func run(logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) int {
	defer logger.Sync() //nolint:errcheck

	fail := func(err error, context string) int {
		logger.Error(context, zap.Error(err))
		fmt.Fprintf(stderr, "%s: error: %s: %v\n", app.Name, context, err)
		return 1
	}

	polygons, err := readInput(stdin)
	if err != nil {
		return fail(err, "reading input")
	}
	logger.Debug("read input", zap.Int("polygons", len(polygons)))

	decomposer := &advanced.Decomposer{
		Tolerance: *tolerance,
		Resolver: advanced.Resolver{
			ConcavityWeight: *concavityWeight,
			DistanceOffset:  *distanceOffset,
		},
		ParallelThreshold: *parallelThreshold,
		Logger:            logger,
	}

	au := aurora.NewAurora(!*noColor)
	var pieces advanced.PolygonList
	failed := 0
	for i, poly := range polygons {
		result, err := decomposer.Decompose(poly)
		if err != nil {
			failed++
			logger.Debug("decomposition failed", zap.Int("polygon", i), zap.Error(err))
			fmt.Fprintf(stderr, "%s polygon %d: %v\n", au.Red("✗"), i, err)
			continue
		}
		fmt.Fprintf(stderr, "%s polygon %d: %d vertices -> %d pieces, worst concavity %.3g\n",
			au.Green("✓"), i, len(poly.Points), au.Bold(len(result)), worstConcavity(result))
		pieces = append(pieces, result...)
	}

	if *outPath != "" {
		err = advanced.WriteResultFile(*outPath, pieces)
	} else {
		err = advanced.WriteResult(stdout, pieces)
	}
	if err != nil {
		return fail(err, "writing result")
	}

	if *pngPath != "" {
		if err := pieces.SavePNG(*pngPath, *scale); err != nil {
			return fail(err, "rendering")
		}
	}
	if *show {
		if err := pieces.Show(*scale); err != nil {
			return fail(err, "rendering")
		}
	}

	if failed > 0 {
		fmt.Fprintf(stderr, "%s\n", au.Yellow(fmt.Sprintf("%d of %d polygons failed", failed, len(polygons))))
		return 1
	}
	return 0
}

func worstConcavity(list advanced.PolygonList) float64 {
	worst := 0.0
	for _, poly := range list {
		// Every piece already made it through the hull builder
		concavity, _ := advanced.MaxConcavity(poly)
		worst = math.Max(worst, concavity)
	}
	return worst
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func readInput(stdin io.Reader) (advanced.PolygonList, error) {
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", *svgPath)
		}
		defer f.Close()
		return advanced.LoadSVGPolygons(f)
	}
	return readPolygons(stdin)
}

func readPolygons(in io.Reader) (advanced.PolygonList, error) {
	var polygons advanced.PolygonList
	// Scan lines
	scanner := bufio.NewScanner(in)
	var points []advanced.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		// Read the next line
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, advanced.Polygon{Points: points})
				points = nil
			}
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning input")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, advanced.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}
