package textstats

import "github.com/aclements/go-moremath/stats"

// Average returns the arithmetic mean of per-unit counts. An empty
// document has no mean and yields ErrEmptyDocument.
func Average(counts []int) (float64, error) {
	if len(counts) == 0 {
		return 0, ErrEmptyDocument
	}
	xs := make([]float64, len(counts))
	for i, c := range counts {
		xs[i] = float64(c)
	}
	s := stats.Sample{Xs: xs}
	return s.Mean(), nil
}
