package list

import (
	"context"
	"fmt"
	"sort"

	appErrors "github.com/noah-isme/sma-console/pkg/errors"
	"github.com/noah-isme/sma-console/pkg/export"
)

// dataset flattens records into tabular form using the schema's field
// extractors. Unknown field names are a validation error.
func (c *Controller[T]) dataset(records []T, fields []string) (export.Dataset, error) {
	for _, field := range fields {
		if _, ok := c.schema.Fields[field]; !ok {
			return export.Dataset{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export field %q", field))
		}
	}

	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		row := make(map[string]string, len(fields))
		for _, field := range fields {
			row[field] = c.schema.Fields[field](record)
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: fields, Rows: rows}, nil
}

// FieldNames returns the declared export columns in stable order.
func (c *Controller[T]) FieldNames() []string {
	names := make([]string, 0, len(c.schema.Fields))
	for name := range c.schema.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Controller[T]) renderCSV(records []T, fields []string) ([]byte, error) {
	dataset, err := c.dataset(records, fields)
	if err != nil {
		return nil, err
	}
	return export.NewCSVExporter().Render(dataset)
}

// ExportCSV serializes the currently filtered view, not the full
// collection, to CSV. The whole buffer is built in memory.
func (c *Controller[T]) ExportCSV(fields []string) ([]byte, error) {
	return c.renderCSV(c.View(), fields)
}

// ExportPDF renders the currently filtered view as a tabular PDF.
func (c *Controller[T]) ExportPDF(fields []string, title string) ([]byte, error) {
	dataset, err := c.dataset(c.View(), fields)
	if err != nil {
		return nil, err
	}
	return export.NewPDFExporter().Render(dataset, title)
}

// ExportXLSX renders the currently filtered view as an Excel workbook.
func (c *Controller[T]) ExportXLSX(fields []string) ([]byte, error) {
	dataset, err := c.dataset(c.View(), fields)
	if err != nil {
		return nil, err
	}
	return export.NewXLSXExporter().Render(dataset, c.schema.Resource)
}

// DownloadCSV fetches the server-rendered CSV export for this resource.
func (c *Controller[T]) DownloadCSV(ctx context.Context) ([]byte, error) {
	return c.api.DownloadCSV(ctx, c.schema.Resource)
}
