package risk

import (
	"context"
	"fmt"

	"github.com/vk/riskgridgo/internal/config"
	"github.com/vk/riskgridgo/internal/ctxlog"
)

// Build populates a fresh store from the risk entries of a config model.
// Later entries for the same link overwrite earlier ones, matching the
// merge-by-overwrite behavior of the config loader. A negative risk value is
// a configuration error: the search assumes non-negative link costs.
func Build(ctx context.Context, model *config.Model) (*Store, error) {
	logger := ctxlog.FromContext(ctx)
	store := NewStore()
	for _, r := range model.Risks {
		if r.Value < 0 {
			return nil, fmt.Errorf("negative risk %v on link %d -> %d", r.Value, r.From, r.To)
		}
		store.SetRisk(r.From, r.To, r.Value)
	}
	logger.Debug("Risk store populated.", "entry_count", len(model.Risks))
	return store, nil
}
