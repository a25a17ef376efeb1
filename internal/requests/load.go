package requests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a schedule request from a .json, .yaml or .yml file.
func LoadFile(path string) (ScheduleRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScheduleRequest{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data as json when ext is .json and as yaml otherwise.
func Parse(data []byte, ext string) (ScheduleRequest, error) {
	var request ScheduleRequest
	if strings.EqualFold(ext, ".json") {
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&request); err != nil {
			return request, fmt.Errorf("decode json: %w", err)
		}
		return request, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil {
		return request, fmt.Errorf("decode yaml: %w", err)
	}
	return request, nil
}

// Marshal encodes the request as yaml, or json when ext is .json.
func Marshal(request ScheduleRequest, ext string) ([]byte, error) {
	if strings.EqualFold(ext, ".json") {
		return json.MarshalIndent(request, "", "  ")
	}
	return yaml.Marshal(request)
}
