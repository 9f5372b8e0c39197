package executor

// Wire types for the execution service's run RPC. The single-case and
// batch endpoints share one shape; only the path differs.

type executeRequest struct {
	Code          string            `json:"code"`
	Language      string            `json:"language"`
	TestCases     []executeTestCase `json:"test_cases"`
	EntryFunction string            `json:"entry_function,omitempty"`
	DriverCode    string            `json:"driver_code,omitempty"`
}

type executeTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	IsHidden       bool   `json:"is_hidden"`
}

type executeResponse struct {
	TestResults     []executeTestResult `json:"test_results"`
	ExecutionTimeMs int64               `json:"execution_time_ms"`
}

type executeTestResult struct {
	Status          string `json:"status"`
	ActualOutput    string `json:"actual_output"`
	ExpectedOutput  string `json:"expected_output"`
	ErrorMessage    string `json:"error_message"`
	ExecutionTimeMs int64  `json:"execution_time_ms"`
	MemoryKB        int64  `json:"memory_kb"`
}
