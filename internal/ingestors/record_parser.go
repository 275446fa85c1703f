package ingestors

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// fieldCount is the exact number of tab-separated columns an accepted
// line must carry: host, dash, time_epoch, method, url, status, bytes.
const fieldCount = 7

// maxLineBytes bounds a single log line; anything longer is treated as a
// stream-level failure rather than silently truncated.
const maxLineBytes = 1024 * 1024

// RawRow is one accepted 7-column line before field derivation.
type RawRow struct {
	Host      string
	TimeEpoch string
	Method    string
	URL       string
	Status    string
	Bytes     string
}

// ParseOutcome reports what the parser did with the input stream.
type ParseOutcome struct {
	Rows []RawRow
	// SkippedLines counts lines dropped for having the wrong column count.
	SkippedLines int
}

// RecordParser turns a raw access-log stream into ordered 7-field rows.
//
// The stream is decoded as Latin-1, so arbitrary single bytes outside
// 7-bit ASCII never fail the whole ingestion. Lines with a column count
// other than 7 are skipped, not errors. Row order follows file order.
//
//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	Parse(r io.Reader) (*ParseOutcome, error)
}

type recordParser struct{}

func NewRecordParser() RecordParser {
	return &recordParser{}
}

func (p *recordParser) Parse(r io.Reader) (*ParseOutcome, error) {
	// Latin-1 maps every byte to a code point, which makes decoding total:
	// one bad byte can never abort the ingestion.
	decoded := charmap.ISO8859_1.NewDecoder().Reader(r)

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	outcome := &ParseOutcome{}
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != fieldCount {
			outcome.SkippedLines++
			continue
		}

		// fields[1] is the dash separator column, ignored.
		outcome.Rows = append(outcome.Rows, RawRow{
			Host:      fields[0],
			TimeEpoch: fields[2],
			Method:    fields[3],
			URL:       fields[4],
			Status:    fields[5],
			Bytes:     fields[6],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan log lines: %w", err)
	}

	return outcome, nil
}
