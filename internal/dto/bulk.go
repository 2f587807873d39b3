package dto

// BulkAction enumerates operations that can be applied to a selection.
type BulkAction string

const (
	BulkDeactivate BulkAction = "deactivate"
	BulkDelete     BulkAction = "delete"
	BulkExport     BulkAction = "export"
)

// BulkFailure records one item that could not be processed.
type BulkFailure struct {
	ID  string `json:"id"`
	Err error  `json:"-"`
}

// BulkResult reports partial success of a bulk action. Items are attempted
// independently; failures never abort the batch.
type BulkResult struct {
	SuccessCount int           `json:"success_count"`
	Failures     []BulkFailure `json:"failures,omitempty"`
	Export       []byte        `json:"-"`
}

// FailureCount returns the number of failed items.
func (r BulkResult) FailureCount() int {
	return len(r.Failures)
}
