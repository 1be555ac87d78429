package batching

// Scheduler distributes a path stream across consumers
type Scheduler interface {
	Schedule(paths []string, shards int) [][]string
}

// RoundRobinScheduler deals paths to shards in turn, so each shard keeps
// the label interleave of the input stream
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes paths across shards using round-robin
func (s *RoundRobinScheduler) Schedule(paths []string, shards int) [][]string {
	if shards <= 0 {
		shards = 1
	}

	distribution := make([][]string, shards)
	for i := range distribution {
		distribution[i] = make([]string, 0, len(paths)/shards+1)
	}

	for i, p := range paths {
		distribution[i%shards] = append(distribution[i%shards], p)
	}

	return distribution
}
