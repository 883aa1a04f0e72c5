package threshold

import (
	"context"
	"sync"
)

// Scan evaluates each energy at the solver's inelasticity, in order.
func (s *Solver) Scan(ctx context.Context, energies []float64) ([]Result, error) {
	results := make([]Result, 0, len(energies))
	for _, e := range energies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := s.CalculateDefault(e)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Sensitivity evaluates sqrtS at each inelasticity in ks.
func (s *Solver) Sensitivity(ctx context.Context, sqrtS float64, ks []float64) ([]Result, error) {
	return fanOut(ctx, len(ks), func(i int) (Result, error) {
		return s.Calculate(sqrtS, ks[i])
	})
}

// ParticipantScan evaluates sqrtS with N_part replaced by each value in nparts.
func (s *Solver) ParticipantScan(ctx context.Context, sqrtS float64, nparts []float64) ([]Result, error) {
	return fanOut(ctx, len(nparts), func(i int) (Result, error) {
		sub, err := New(s.constants.WithParticipants(nparts[i]), s.opts)
		if err != nil {
			return Result{}, err
		}
		return sub.CalculateDefault(sqrtS)
	})
}

// EnergyGrid evaluates energies concurrently, keeping input order.
func (s *Solver) EnergyGrid(ctx context.Context, energies []float64) ([]Result, error) {
	return fanOut(ctx, len(energies), func(i int) (Result, error) {
		return s.CalculateDefault(energies[i])
	})
}

// fanOut runs fn for each index on its own goroutine and returns results in
// index order, or the first error by index.
func fanOut(ctx context.Context, n int, fn func(i int) (Result, error)) ([]Result, error) {
	results := make([]Result, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = fn(idx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
