package main

import (
	"encoding/json"
	"os"

	gpmapapi "gpmap/pkg/gpmap"
)

// loadSampleRequestFromConfig overlays keys present in the JSON config
// onto req; keys absent from the file leave the flag values alone.
func loadSampleRequestFromConfig(path string, req gpmapapi.SampleMapRequest) (gpmapapi.SampleMapRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return req, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return req, err
	}

	if v, ok := asString(raw["map_id"]); ok {
		req.MapID = v
	}
	if v, ok := asString(raw["sample_id"]); ok {
		req.SampleID = v
	}
	if v, ok := asInt(raw["n_samples"]); ok {
		req.NSamples = v
	}
	if v, ok := asFloat64(raw["fraction"]); ok {
		req.Fraction = v
	}
	if v, ok := asBool(raw["derived"]); ok {
		req.Derived = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	return req, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
