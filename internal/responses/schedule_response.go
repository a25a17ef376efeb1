package responses

type TimelineBlock struct {
	ProcessId string `json:"process_id"`
	StartTime int    `json:"start_time"`
	EndTime   int    `json:"end_time"`
}

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	ReadyTime      int    `json:"ready_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	Quantum               int               `json:"quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	AverageReadyTime      float64           `json:"average_ready_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []TimelineBlock   `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

// CompareResponse holds one response per algorithm that could run, and the
// rejection reason for the others.
type CompareResponse struct {
	RunId   string                      `json:"run_id,omitempty"`
	Results map[string]ScheduleResponse `json:"results"`
	Errors  map[string]string           `json:"errors,omitempty"`
}

type ShareResponse struct {
	Query string `json:"query"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
