package opine

import (
	"strings"
	"testing"
)

func TestReadRecords(t *testing.T) {
	input := `{"text": "First comment.", "timestamp": "2023-01-01T00:00:00Z"}

{"text": "Second comment.", "timestamp": "2023-01-02T00:00:00Z"}
`
	records, err := ReadRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Text != "First comment." || records[0].Timestamp != "2023-01-01T00:00:00Z" {
		t.Errorf("record 0 = %+v", records[0])
	}
	if records[1].Text != "Second comment." {
		t.Errorf("record 1 = %+v", records[1])
	}
}

func TestReadRecordsEmptyFields(t *testing.T) {
	// Present-but-empty fields are valid; only absence is an error.
	records, err := ReadRecords(strings.NewReader(`{"text": "", "timestamp": ""}`))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 1 || records[0].Text != "" {
		t.Errorf("records = %+v, want one empty record", records)
	}
}

func TestReadRecordsBadInput(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
		desc    string
	}{
		{
			`{"text": "ok", "timestamp": "t"}` + "\n" + `{"timestamp": "t"}`,
			"record 2: missing text field",
			"Missing text",
		},
		{
			`{"text": "ok"}`,
			"record 1: missing timestamp field",
			"Missing timestamp",
		},
		{
			`{"text": "ok", "timestamp": "t"}` + "\n" + `not json`,
			"record 2",
			"Malformed JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadRecords accepted bad input")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestReadRecordsEmptyStream(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want none", len(records))
	}
}

func TestReadRecordsFileMissing(t *testing.T) {
	if _, err := ReadRecordsFile("testdata/does-not-exist.jsonl"); err == nil {
		t.Error("ReadRecordsFile accepted a missing path")
	}
}
