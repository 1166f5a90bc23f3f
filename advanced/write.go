package advanced

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteResult writes one line per polygon, in list order, each in the
// notation of Polygon.String.
func WriteResult(w io.Writer, list PolygonList) error {
	buffered := bufio.NewWriter(w)
	for i, poly := range list {
		if _, err := buffered.WriteString(poly.String() + "\n"); err != nil {
			return errors.Wrapf(err, "writing polygon %d", i)
		}
	}
	return errors.Wrap(buffered.Flush(), "flushing result")
}

// WriteResultFile writes the result to path, replacing anything already there.
func WriteResultFile(path string, list PolygonList) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil {
			err = errors.Wrapf(closeErr, "closing %s", path)
		}
	}()
	return WriteResult(f, list)
}
