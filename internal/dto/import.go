package dto

// ImportCSVRequest carries raw CSV content to the bulk import endpoint.
type ImportCSVRequest struct {
	CSVData string `json:"csv_data"`
}

// ImportResult summarises a server-side CSV import.
type ImportResult struct {
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
