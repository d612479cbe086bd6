package matching

import (
	"math/rand"

	"github.com/diconnect/diconnect/internal/domain"
)

// PrepareMatches shuffles users and pairs consecutive elements.
// When the count is odd the unpaired remainder is excluded from this run;
// there is no carry-over to the next cycle. The caller owns the random
// source so runs can be made deterministic in tests.
func PrepareMatches(rng *rand.Rand, users []domain.TeamUserMapping) []domain.Pair {
	if len(users) < 2 {
		return []domain.Pair{}
	}

	shuffled := make([]domain.TeamUserMapping, len(users))
	copy(shuffled, users)

	n := len(shuffled)
	for i := 0; i < n-1; i++ {
		j := i + rng.Intn(n-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	pairs := make([]domain.Pair, 0, n/2)
	for i := 0; i+1 < n; i += 2 {
		pairs = append(pairs, domain.Pair{
			First:  shuffled[i],
			Second: shuffled[i+1],
		})
	}

	return pairs
}
