package opine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadRecords reads newline-delimited JSON records from r. A record
// missing the text or timestamp field is a fatal error naming the line;
// there is no skip-and-continue for malformed input. Blank lines are
// ignored.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var rec struct {
			Text      *string `json:"text"`
			Timestamp *string `json:"timestamp"`
		}
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", line, err)
		}
		if rec.Text == nil {
			return nil, fmt.Errorf("record %d: missing text field", line)
		}
		if rec.Timestamp == nil {
			return nil, fmt.Errorf("record %d: missing timestamp field", line)
		}

		records = append(records, Record{Text: *rec.Text, Timestamp: *rec.Timestamp})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input stream: %w", err)
	}

	return records, nil
}

// ReadRecordsFile reads newline-delimited JSON records from path.
func ReadRecordsFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	defer f.Close()
	return ReadRecords(f)
}
