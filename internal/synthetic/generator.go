package synthetic

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jpdeegan97/Northfield-Solidarity-sub007/internal/database/repository"
)

var (
	executionTypes = []string{"SOP_UPDATE", "ACCESS_REQ", "EXCEPTION", "DEPLOYMENT"}
	statuses       = []string{"CLEARED", "PENDING", "FLAGGED"}
	initiators     = []string{"SYSTEM", "J.DOE", "AUTO_SENTINEL", "CI/CD", "GGP_Orchestrator"}
	summaries      = []string{
		"Routine policy re-indexing for Sector %d.",
		"Requesting write access to IDN-Production shard %d.",
		"Traffic spike anomaly detected in MUX-Gateway node %d.",
		"Deployment batch #%d authorized.",
	}
)

// Executions generates n synthetic executions ending at end, one minute apart.
// The same seed always produces the same records apart from their IDs.
func Executions(n int, seed int64, end time.Time) []repository.Execution {
	rng := rand.New(rand.NewSource(seed))
	out := make([]repository.Execution, 0, n)
	for i := 0; i < n; i++ {
		kind := rng.Intn(len(executionTypes))
		out = append(out, repository.Execution{
			ID:         "GOV-" + uuid.NewString()[:8],
			Type:       executionTypes[kind],
			Status:     statuses[rng.Intn(len(statuses))],
			ExecutedAt: end.Add(-time.Duration(i) * time.Minute).UTC(),
			Initiator:  initiators[rng.Intn(len(initiators))],
			Summary:    fmt.Sprintf(summaries[kind], rng.Intn(9000)+100),
		})
	}
	return out
}

// SeedExecutions writes n synthetic executions through repo.
func SeedExecutions(ctx context.Context, repo *repository.ExecutionRepo, n int, seed int64) error {
	for _, e := range Executions(n, seed, time.Now().UTC().Truncate(time.Second)) {
		if err := repo.Upsert(ctx, e); err != nil {
			return fmt.Errorf("seed synthetic execution: %w", err)
		}
	}
	return nil
}
