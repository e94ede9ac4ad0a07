package gain

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/lpalum/machine-learning/dataset"
)

// validate checks every index of splits against a table of total rows, and
// when strict, that no row is claimed twice and every row is claimed.
func validate(splits []dataset.Partition, total int, strict bool) error {
	for i, p := range splits {
		for _, r := range p {
			if r < 0 || r >= total {
				return fmt.Errorf("%w: partition %d: %w: row %d of %d",
					ErrInvalidArgument, i, dataset.ErrOutOfRange, r, total)
			}
		}
	}

	if !strict {
		return nil
	}

	seen := hashset.New()
	for i, p := range splits {
		for _, r := range p {
			if seen.Contains(r) {
				return fmt.Errorf("%w: partition %d: row %d is already in another partition",
					ErrInvalidArgument, i, r)
			}
			seen.Add(r)
		}
	}

	if seen.Size() != total {
		return fmt.Errorf("%w: partitions cover %d of %d rows", ErrInvalidArgument, seen.Size(), total)
	}
	return nil
}
