package graph_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Achrafbennanizia/Dijkstra/graph"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gr")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDimacs(t *testing.T) {
	path := writeTemp(t, ""+
		"c the diamond graph\n"+
		"p sp 4 5\n"+
		"a 1 2 10\n"+
		"a 1 3 5\n"+
		"c interleaved comment\n"+
		"a 2 3 2\n"+
		"a 2 4 1\n"+
		"a 3 4 9\n")

	g, err := graph.LoadDimacs(path)
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, uint64(5), g.EdgeCount())
	require.Equal(t, []graph.Edge{{To: 2, Weight: 10}, {To: 3, Weight: 5}}, g.OutEdges[1])
	require.Equal(t, []graph.Edge{{To: 4, Weight: 9}}, g.OutEdges[3])
}

func TestLoadDimacsNoProblemLine(t *testing.T) {
	path := writeTemp(t, "c nothing but comments\n")
	_, err := graph.LoadDimacs(path)
	require.ErrorIs(t, err, graph.ErrNoProblemLine)
}

func TestLoadDimacsArcBeforeProblem(t *testing.T) {
	path := writeTemp(t, "a 1 2 3\np sp 2 1\n")
	_, err := graph.LoadDimacs(path)
	require.ErrorIs(t, err, graph.ErrNoProblemLine)
}

func TestLoadDimacsMalformed(t *testing.T) {
	for _, contents := range []string{
		"p sp 2\n",          // short problem line
		"p xx 2 1\n",        // wrong problem type
		"p sp 2 1\na 1 2\n", // short arc line
		"p sp 2 1\nz 1 2 1\n",
		"p sp 2 1\na 1 2 5x\n", // non-digit weight
		"p sp 2 1\na 1 2 -5\n", // signs are not accepted
		"p sp 2 1\na x1 2 5\n", // non-digit node id
		"p sp 2x 1\na 1 2 5\n", // non-digit node count
		"p sp 2 1\na 1 2 99999999999999999999\n", // weight overflows
	} {
		path := writeTemp(t, contents)
		_, err := graph.LoadDimacs(path)
		require.Error(t, err, "contents: %q", contents)
	}
}

func TestLoadDimacsOutOfRange(t *testing.T) {
	path := writeTemp(t, "p sp 2 1\na 1 3 5\n")
	_, err := graph.LoadDimacs(path)
	require.ErrorIs(t, err, graph.ErrBadNode)
}

func TestLoadDimacsNoTrailingNewline(t *testing.T) {
	path := writeTemp(t, "p sp 2 1\na 1 2 7")
	g, err := graph.LoadDimacs(path)
	require.NoError(t, err)
	require.Equal(t, []graph.Edge{{To: 2, Weight: 7}}, g.OutEdges[1])
}
