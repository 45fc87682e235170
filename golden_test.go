package moxml_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbrandt/go-moxml"
	"github.com/nbrandt/go-moxml/naming"
	"github.com/nbrandt/go-moxml/xmltree"
)

var update = flag.Bool("update", false, "update golden files")

// genericResolver accepts every tag, deriving the class identifier from
// the element tag. It stands in for a fully populated resource registry.
type genericResolver struct{}

func (genericResolver) Resolve(tag string) (moxml.Node, error) {
	if tag == moxml.OperationStatusTag {
		return moxml.NewOperationStatus(), nil
	}
	return moxml.NewObject(naming.Capitalize(tag), tag), nil
}

// TestGolden ingests each testdata document into an object tree and
// re-marshals it. The golden file holds the canonical serialized form:
// comments and inter-element whitespace are gone, attribute order is
// preserved, and nothing below a status leaf survives.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.xml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			el, err := xmltree.Parse(src)
			require.NoError(t, err)

			root := moxml.NewObject(naming.Capitalize(el.Tag), el.Tag)
			require.NoError(t, root.FromXML(el, moxml.WithResolver(genericResolver{})))

			actual, err := moxml.Marshal(root)
			require.NoError(t, err)

			goldenFile := strings.Replace(file, ".xml", ".golden", 1)
			if *update {
				require.NoError(t, os.WriteFile(goldenFile, actual, 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			// The file system may add a trailing newline to the golden
			// file, but the encoder does not.
			expected = bytes.TrimSuffix(expected, []byte("\n"))

			require.Equal(t, string(expected), string(actual))
		})
	}
}
