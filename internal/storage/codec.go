package storage

import (
	"encoding/json"
	"errors"

	"gpmap/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeMap(record model.MapRecord) ([]byte, error) {
	return json.Marshal(record)
}

func DecodeMap(data []byte) (model.MapRecord, error) {
	var record model.MapRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.MapRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.MapRecord{}, err
	}
	return record, nil
}

func EncodeSample(record model.SampleRecord) ([]byte, error) {
	return json.Marshal(record)
}

func DecodeSample(data []byte) (model.SampleRecord, error) {
	var record model.SampleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.SampleRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.SampleRecord{}, err
	}
	return record, nil
}

func checkVersion(record model.VersionedRecord) error {
	if record.SchemaVersion != CurrentSchemaVersion || record.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
