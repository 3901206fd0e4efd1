package storage

import (
	"encoding/json"
	"fmt"
)

// EntriesKey is the slot holding the whole entry list.
const EntriesKey = "finance_notebook_entries_v1"

// EntryRecord is the persisted shape of one entry. Amount stays a JSON number
// literal so decimal values survive the round trip unchanged.
type EntryRecord struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
}

// EncodeEntries serializes records as a JSON array. A nil slice encodes as [].
func EncodeEntries(records []EntryRecord) ([]byte, error) {
	if records == nil {
		records = []EntryRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode entries: %w", err)
	}
	return data, nil
}

// DecodeEntries parses a JSON array of records. JSON null decodes to no records.
func DecodeEntries(data []byte) ([]EntryRecord, error) {
	var records []EntryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return records, nil
}
