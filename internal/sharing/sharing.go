// Package sharing encodes a scheduling request into a URL query string so a
// simulation setup can be passed around as a link, and decodes it back.
package sharing

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/requests"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/schedulers"
)

const (
	processesParam = "processes"
	algorithmParam = "algo"
	quantumParam   = "quantum"
)

var ErrMalformed = errors.New("malformed share state")

// Encode writes processes, algorithm and (for round robin only) the quantum.
// Empty fields are left out.
func Encode(request requests.ScheduleRequest) (string, error) {
	params := url.Values{}
	if len(request.Processes) > 0 {
		data, err := json.Marshal(request.Processes)
		if err != nil {
			return "", fmt.Errorf("encode processes: %w", err)
		}
		params.Set(processesParam, string(data))
	}
	if request.Algorithm != "" {
		params.Set(algorithmParam, request.Algorithm)
	}
	if request.Quantum != nil && isRoundRobin(request.Algorithm) {
		params.Set(quantumParam, strconv.Itoa(*request.Quantum))
	}
	return params.Encode(), nil
}

// Decode parses a query string produced by Encode. An unparseable quantum is
// ignored; unparseable processes are an error.
func Decode(query string) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	params, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return request, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if raw := params.Get(processesParam); raw != "" {
		if !gjson.Valid(raw) || !gjson.Parse(raw).IsArray() {
			return request, fmt.Errorf("%w: processes must be a json array", ErrMalformed)
		}
		if err := json.Unmarshal([]byte(raw), &request.Processes); err != nil {
			return request, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	request.Algorithm = params.Get(algorithmParam)
	if raw := params.Get(quantumParam); raw != "" {
		if quantum, err := strconv.Atoi(raw); err == nil {
			request.Quantum = &quantum
		}
	}
	return request, nil
}

func isRoundRobin(name string) bool {
	algorithm, err := schedulers.ParseAlgorithm(name)
	return err == nil && algorithm == schedulers.RoundRobin
}
