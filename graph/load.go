package graph

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Achrafbennanizia/Dijkstra/utils"
)

var (
	ErrNoProblemLine = errors.New("graph: missing DIMACS problem line")
	ErrBadLine       = errors.New("graph: malformed DIMACS line")
)

const scanBuffSize = 1 << 16

// parseField screens a field before handing it to the raw digit parser,
// which itself assumes well-formed input. Length is capped so the parse
// cannot overflow int64.
func parseField(s string) (int64, bool) {
	if len(s) == 0 || len(s) > 18 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	return utils.ToIntStr(s), true
}

// LoadDimacs reads a graph in the DIMACS shortest-path format:
// 'c' lines are comments, a single 'p sp <nodes> <edges>' line declares the
// size, and each 'a <from> <to> <weight>' line declares one directed arc.
// Node ids are 1-based. Arc lines before the problem line are an error, as
// are out-of-range ids.
func LoadDimacs(path string) (*Graph, error) {
	file := utils.OpenFile(path)
	defer file.Close()

	watch := utils.Watch{}
	watch.Start()

	scanner := utils.FastFileLines{Buf: make([]byte, scanBuffSize)}
	fields := make([]string, 8)

	var g *Graph
	var err error
	lineNum := 0
	for {
		line := scanner.Scan(file)
		if line == nil {
			break
		}
		lineNum++
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		count := utils.FastFields(fields, line)
		switch line[0] {
		case 'p':
			if count != 4 || fields[1] != "sp" {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNum, string(line))
			}
			nodes, ok := parseField(fields[2])
			if !ok {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNum, string(line))
			}
			if g, err = New(int(nodes)); err != nil {
				return nil, err
			}
		case 'a':
			if g == nil {
				return nil, ErrNoProblemLine
			}
			if count != 4 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNum, string(line))
			}
			from, okF := parseField(fields[1])
			to, okT := parseField(fields[2])
			weight, okW := parseField(fields[3])
			if !okF || !okT || !okW {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNum, string(line))
			}
			if err = g.AddEdge(int32(from), int32(to), weight); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNum, string(line))
		}
	}
	if g == nil {
		return nil, ErrNoProblemLine
	}

	log.Debug().Msg("Loaded " + utils.V(g.NodeCount()) + " nodes and " + utils.V(g.EdgeCount()) +
		" edges in (ms) " + utils.V(watch.Elapsed().Milliseconds()))
	return g, nil
}
