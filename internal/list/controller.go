package list

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-console/internal/client"
	"github.com/noah-isme/sma-console/internal/dto"
	appErrors "github.com/noah-isme/sma-console/pkg/errors"
)

// ConfirmFunc acknowledges an irreversible action on a record. Remove never
// issues a network call until the func returns true.
type ConfirmFunc[T Record] func(T) bool

// Controller owns one resource's client-side collection: it loads records
// wholesale, computes filtered views and derived stats, and applies
// mutations after the backend confirms them. Mutations against the same
// record id are serialized; distinct ids proceed concurrently.
type Controller[T Record] struct {
	schema  Schema[T]
	api     *client.Client
	logger  *zap.Logger
	confirm ConfirmFunc[T]

	mu      sync.RWMutex
	records []T
	state   FilterState
	stats   DerivedStats

	lockMu  sync.Mutex
	idLocks map[string]*sync.Mutex
}

// Options carries optional controller collaborators.
type Options[T Record] struct {
	Logger  *zap.Logger
	Confirm ConfirmFunc[T]
}

// NewController builds a controller for one resource.
func NewController[T Record](schema Schema[T], api *client.Client, opts Options[T]) *Controller[T] {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller[T]{
		schema:  schema,
		api:     api,
		logger:  logger.With(zap.String("resource", schema.Resource)),
		confirm: opts.Confirm,
		state:   FilterState{Filters: make(map[string]string)},
		idLocks: make(map[string]*sync.Mutex),
	}
}

// Load fetches the full collection in one call. On failure the prior
// collection is retained untouched and the error surfaces to the caller;
// there is no retry and no fallback data.
func (c *Controller[T]) Load(ctx context.Context) ([]T, error) {
	var fetched []T
	if err := c.api.Get(ctx, "/"+c.schema.Resource, &fetched); err != nil {
		c.logger.Warn("load failed", zap.Error(err))
		return nil, err
	}

	seen := make(map[string]bool, len(fetched))
	for _, record := range fetched {
		id := record.RecordID()
		if seen[id] {
			return nil, appErrors.Clone(appErrors.ErrServer, fmt.Sprintf("duplicate record id %q in response", id))
		}
		seen[id] = true
	}

	c.mu.Lock()
	c.records = fetched
	c.recomputeStatsLocked()
	c.mu.Unlock()

	c.logger.Debug("collection loaded", zap.Int("count", len(fetched)))
	return c.Records(), nil
}

// Records returns a copy of the full collection in its current order.
func (c *Controller[T]) Records() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the collection size.
func (c *Controller[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// View returns the records matching the current search and filters,
// preserving collection order.
func (c *Controller[T]) View() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewLocked()
}

func (c *Controller[T]) viewLocked() []T {
	out := make([]T, 0, len(c.records))
	for _, record := range c.records {
		if c.schema.matches(record, c.state) {
			out = append(out, record)
		}
	}
	return out
}

// SetSearchText updates the free-text search and returns the new view.
func (c *Controller[T]) SetSearchText(text string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Search = text
	return c.viewLocked()
}

// SetFilter sets one filter constraint, or clears it when value is
// FilterAll. Setting an undeclared filter field is a validation error.
func (c *Controller[T]) SetFilter(field, value string) ([]T, error) {
	if _, ok := c.schema.Filterable[field]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown filter field %q", field))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == FilterAll {
		delete(c.state.Filters, field)
	} else {
		c.state.Filters[field] = value
	}
	return c.viewLocked(), nil
}

// FilterState returns a copy of the active search and filter constraints.
func (c *Controller[T]) FilterState() FilterState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	filters := make(map[string]string, len(c.state.Filters))
	for field, value := range c.state.Filters {
		filters[field] = value
	}
	return FilterState{Search: c.state.Search, Filters: filters}
}

// Sort reorders the collection in place with a stable sort.
func (c *Controller[T]) Sort(less func(a, b T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sort.SliceStable(c.records, func(i, j int) bool {
		return less(c.records[i], c.records[j])
	})
}

// Create validates the draft locally, then posts it. The confirmed record
// is appended to the collection and stats recomputed. Validation failures
// never reach the network.
func (c *Controller[T]) Create(ctx context.Context, draft interface{}) (T, error) {
	var zero T
	if c.schema.ValidateDraft != nil {
		if err := c.schema.ValidateDraft(draft); err != nil {
			return zero, err
		}
	}

	var created T
	if err := c.api.Post(ctx, "/"+c.schema.Resource, draft, &created); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.positionLocked(created.RecordID()); ok {
		return zero, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("record %q already present", created.RecordID()))
	}
	c.records = append(c.records, created)
	c.recomputeStatsLocked()
	return created, nil
}

// Fetch retrieves a single record and reconciles it into the collection:
// replaced in place when present, appended otherwise.
func (c *Controller[T]) Fetch(ctx context.Context, id string) (T, error) {
	var fetched T
	if err := c.api.Get(ctx, c.recordPath(id), &fetched); err != nil {
		return fetched, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if pos, ok := c.positionLocked(id); ok {
		c.records[pos] = fetched
	} else {
		c.records = append(c.records, fetched)
	}
	c.recomputeStatsLocked()
	return fetched, nil
}

// Update sends a partial patch and replaces the confirmed record in place,
// preserving its position. Unknown ids fail before any network call.
func (c *Controller[T]) Update(ctx context.Context, id string, patch map[string]interface{}) (T, error) {
	var zero T
	if _, ok := c.position(id); !ok {
		return zero, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("record %q not in collection", id))
	}

	unlock := c.lockID(id)
	defer unlock()
	return c.updateSerialized(ctx, id, patch)
}

// updateSerialized performs the remote patch and in-place replacement.
// Callers must hold the record's id lock.
func (c *Controller[T]) updateSerialized(ctx context.Context, id string, patch map[string]interface{}) (T, error) {
	var zero T
	// Re-check under the id lock: a concurrent Remove may have won.
	if _, ok := c.position(id); !ok {
		return zero, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("record %q not in collection", id))
	}

	var updated T
	if err := c.api.Put(ctx, c.recordPath(id), patch, &updated); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if pos, ok := c.positionLocked(id); ok {
		c.records[pos] = updated
	}
	c.recomputeStatsLocked()
	return updated, nil
}

// Remove deletes a record after the confirmation callback acknowledges the
// action. Without acknowledgement no network call is issued. Order of the
// remaining records is preserved.
func (c *Controller[T]) Remove(ctx context.Context, id string) error {
	record, ok := c.recordByID(id)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("record %q not in collection", id))
	}

	if c.confirm == nil || !c.confirm(record) {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, fmt.Sprintf("deletion of %q not confirmed", id))
	}

	unlock := c.lockID(id)
	defer unlock()

	if _, ok := c.position(id); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("record %q not in collection", id))
	}

	if err := c.api.Delete(ctx, c.recordPath(id)); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if pos, ok := c.positionLocked(id); ok {
		c.records = append(c.records[:pos], c.records[pos+1:]...)
	}
	c.recomputeStatsLocked()
	return nil
}

// ToggleStatus advances a record's status through the fixed domain table
// and applies it as a single-field patch. Terminal statuses have no
// transition and fail locally with a conflict.
func (c *Controller[T]) ToggleStatus(ctx context.Context, id string) (T, error) {
	var zero T
	if c.schema.Status == nil || len(c.schema.Transitions) == 0 {
		return zero, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s records have no status workflow", c.schema.Resource))
	}

	// The current status is read under the id lock so concurrent toggles
	// observe each other's outcome instead of both reading the same state.
	unlock := c.lockID(id)
	defer unlock()

	record, ok := c.recordByID(id)
	if !ok {
		return zero, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("record %q not in collection", id))
	}
	current := c.schema.Status(record)

	if c.schema.Terminal[current] {
		return zero, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("status %q is terminal", current))
	}
	next, ok := c.schema.Transitions[current]
	if !ok {
		return zero, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("no transition from status %q", current))
	}

	return c.updateSerialized(ctx, id, map[string]interface{}{c.schema.statusField(): next})
}

func (c *Controller[T]) recordPath(id string) string {
	return fmt.Sprintf("/%s/%s", c.schema.Resource, id)
}

func (c *Controller[T]) recordByID(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if pos, ok := c.positionLocked(id); ok {
		return c.records[pos], true
	}
	var zero T
	return zero, false
}

func (c *Controller[T]) position(id string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.positionLocked(id)
}

func (c *Controller[T]) positionLocked(id string) (int, bool) {
	for i, record := range c.records {
		if record.RecordID() == id {
			return i, true
		}
	}
	return 0, false
}

// lockID serializes mutations per record id, eliminating last-write-wins
// races between concurrent updates of the same record.
func (c *Controller[T]) lockID(id string) func() {
	c.lockMu.Lock()
	lock, ok := c.idLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		c.idLocks[id] = lock
	}
	c.lockMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// ImportCSV uploads raw CSV rows for server-side bulk creation, then
// reloads the collection so created records become visible. The import
// result is returned even when the reload fails.
func (c *Controller[T]) ImportCSV(ctx context.Context, data []byte) (*dto.ImportResult, error) {
	result, err := c.api.ImportCSV(ctx, c.schema.Resource, string(data))
	if err != nil {
		return nil, err
	}
	if _, err := c.Load(ctx); err != nil {
		return result, err
	}
	return result, nil
}
