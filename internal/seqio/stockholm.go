package seqio

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jglaser/xssp/internal/mas"
)

// Stockholm is one alignment read from a Stockholm 1.0 file, the query
// record first.
type Stockholm struct {
	// ID is taken from the #=GF CC PDBID annotation, when present.
	ID string

	// Header collects the #=GF CC annotation lines carried over from
	// the source databank entry, newline separated. Each line keeps
	// its seven column field label, DATE or HEADER for example.
	Header string

	Records []Record
}

var headerFields = []string{
	"#=GF CC DATE   ",
	"#=GF CC PDBID  ",
	"#=GF CC HEADER ",
	"#=GF CC COMPND ",
	"#=GF CC AUTHOR ",
	"#=GF CC DBREF  ",
}

// ReadStockholm parses a Stockholm 1.0 alignment. The query record is
// identified by queryID; when that is empty the first annotated sequence
// is taken to be the query. Sequence blocks must list the records in a
// consistent order.
func ReadStockholm(contents, queryID string) (*Stockholm, error) {
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	if len(lines) == 0 || lines[0] != "# STOCKHOLM 1.0" {
		return nil, mas.Formatf("not a stockholm file, missing first line")
	}

	st := &Stockholm{Records: []Record{{ID: queryID}}}

	ix, width := 0, 0
	done := false

scan:
	for _, line := range lines[1:] {
		switch {
		case line == "":
			continue

		case line == "//":
			done = true
			break scan

		case strings.HasPrefix(line, "#=GF CC PDBID "):
			st.ID = line[14:]

		case isHeaderField(line):
			st.Header += line[8:] + "\n"

		case strings.HasPrefix(line, "#=GS "):
			id, desc := line[5:], ""
			if s := strings.Index(id, "DE "); s >= 0 {
				desc = id[s+3:]
				id = id[:s]
			}
			id = strings.TrimSpace(id)

			if st.Records[0].ID == "" {
				st.Records[0].ID = id
			}
			if len(st.Records) > 1 || st.Records[0].ID != id {
				st.Records = append(st.Records, Record{ID: id, Desc: desc})
			}

		case line[0] == '#':
			// other annotations are not used

		default:
			s := strings.IndexByte(line, ' ')
			if s < 0 {
				return nil, mas.Formatf("invalid stockholm file")
			}

			id := line[:s]
			sseq := strings.TrimLeft(line[s:], " ")

			if id == st.Records[0].ID {
				ix = 0
				width += len(sseq)
			} else {
				ix++
				if ix >= len(st.Records) {
					st.Records = append(st.Records, Record{ID: id})
				}
				if id != st.Records[ix].ID {
					return nil, mas.Formatf("invalid stockholm file, ID does not match (%s != %s)", id, st.Records[ix].ID)
				}
			}

			st.Records[ix].Seq += sseq
		}
	}

	if !done {
		return nil, mas.Formatf("stockholm file is truncated or incomplete")
	}
	if len(st.Records) < 2 {
		return nil, mas.Dataf("insufficient sequences in stockholm alignment")
	}

	log.Debugf("read stockholm alignment, width = %d, nr of hits = %d", width, len(st.Records)-1)

	return st, nil
}

func isHeaderField(line string) bool {
	for _, p := range headerFields {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
