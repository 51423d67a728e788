package problemgen

import "github.com/abhisek/lenslab/internal/rng"

// SelectPartition draws one partition uniformly. partitions must be
// non-empty.
func SelectPartition(src rng.Source, partitions []Partition) Partition {
	return partitions[rng.Pick(src, len(partitions))]
}
