package numbers

import (
	"fmt"
	"math/big"
	"sync"
)

// FactorBatch factors every value of ns, spreading the work over the
// configured number of workers. Results keep the order of ns; the first
// failure is returned. A factorizer holding a source runs on one worker,
// since sources are not safe for concurrent use.
func (f *Factorizer) FactorBatch(ns []*big.Int) ([]*Factorization, error) {
	n := len(ns)
	if n == 0 {
		return []*Factorization{}, nil
	}

	numWorkers := f.config.Workers
	if f.source != nil {
		numWorkers = 1
	}
	if n < numWorkers {
		numWorkers = n
	}

	// Split into chunks
	chunkSize := (n + numWorkers - 1) / numWorkers
	results := make([]*Factorization, n)

	var wg sync.WaitGroup
	errChan := make(chan error, numWorkers)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			start := workerID * chunkSize
			if start >= n {
				return
			}
			end := min(start+chunkSize, n)

			for i := start; i < end; i++ {
				factorization, err := f.Factor(ns[i])
				if err != nil {
					errChan <- fmt.Errorf("worker %d failed on input %d: %w", workerID, i, err)
					return
				}
				results[i] = factorization
			}
		}(w)
	}

	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, err
	}

	return results, nil
}
