package list

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-console/internal/dto"
	appErrors "github.com/noah-isme/sma-console/pkg/errors"
)

// Bulk applies one action to every selected id. Items are attempted
// independently: per-item failures are collected, never aborting the batch.
// An empty selection fails before any network activity.
func (c *Controller[T]) Bulk(ctx context.Context, ids []string, action dto.BulkAction) (*dto.BulkResult, error) {
	if len(ids) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNoSelection, "bulk action requires a selection")
	}

	result := &dto.BulkResult{}
	switch action {
	case dto.BulkDeactivate:
		c.bulkDeactivate(ctx, ids, result)
	case dto.BulkDelete:
		c.bulkDelete(ctx, ids, result)
	case dto.BulkExport:
		if err := c.bulkExport(ids, result); err != nil {
			return nil, err
		}
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown bulk action %q", action))
	}

	c.logger.Info("bulk action finished",
		zap.String("action", string(action)),
		zap.Int("succeeded", result.SuccessCount),
		zap.Int("failed", result.FailureCount()),
	)
	return result, nil
}

func (c *Controller[T]) bulkDeactivate(ctx context.Context, ids []string, result *dto.BulkResult) {
	if c.schema.InactiveStatus == "" {
		for _, id := range ids {
			result.Failures = append(result.Failures, dto.BulkFailure{
				ID:  id,
				Err: appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s records cannot be deactivated", c.schema.Resource)),
			})
		}
		return
	}
	patch := map[string]interface{}{c.schema.statusField(): c.schema.InactiveStatus}
	for _, id := range ids {
		if _, err := c.Update(ctx, id, patch); err != nil {
			result.Failures = append(result.Failures, dto.BulkFailure{ID: id, Err: err})
			continue
		}
		result.SuccessCount++
	}
}

func (c *Controller[T]) bulkDelete(ctx context.Context, ids []string, result *dto.BulkResult) {
	for _, id := range ids {
		if _, ok := c.position(id); !ok {
			result.Failures = append(result.Failures, dto.BulkFailure{
				ID:  id,
				Err: appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("record %q not in collection", id)),
			})
			continue
		}

		unlock := c.lockID(id)
		err := c.api.Delete(ctx, c.recordPath(id))
		if err == nil {
			c.mu.Lock()
			if p, ok := c.positionLocked(id); ok {
				c.records = append(c.records[:p], c.records[p+1:]...)
			}
			c.recomputeStatsLocked()
			c.mu.Unlock()
		}
		unlock()

		if err != nil {
			result.Failures = append(result.Failures, dto.BulkFailure{ID: id, Err: err})
			continue
		}
		result.SuccessCount++
	}
}

// bulkExport renders the selected records to CSV without touching the
// network; ids absent from the collection are reported as failures.
func (c *Controller[T]) bulkExport(ids []string, result *dto.BulkResult) error {
	selected := make([]T, 0, len(ids))
	for _, id := range ids {
		record, ok := c.recordByID(id)
		if !ok {
			result.Failures = append(result.Failures, dto.BulkFailure{
				ID:  id,
				Err: appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("record %q not in collection", id)),
			})
			continue
		}
		selected = append(selected, record)
	}

	payload, err := c.renderCSV(selected, c.FieldNames())
	if err != nil {
		return err
	}
	result.Export = payload
	result.SuccessCount = len(selected)
	return nil
}
