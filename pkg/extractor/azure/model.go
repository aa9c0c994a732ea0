package azure

type OperationStatus string

const (
	OperationStatusNotStarted OperationStatus = "notStarted"
	OperationStatusRunning    OperationStatus = "running"
	OperationStatusSucceeded  OperationStatus = "succeeded"
	OperationStatusFailed     OperationStatus = "failed"
)

// AnalyzeOperation is the body returned when polling Operation-Location.
type AnalyzeOperation struct {
	Status OperationStatus `json:"status"`

	Error  *OperationError `json:"error,omitempty"`
	Result AnalyzeResult   `json:"analyzeResult"`
}

type OperationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AnalyzeResult struct {
	ModelID string `json:"modelId"`

	Pages []ResultPage `json:"pages"`
}

type ResultPage struct {
	PageNumber int `json:"pageNumber"`

	Lines []ResultLine `json:"lines"`
}

type ResultLine struct {
	Content string `json:"content"`
}
