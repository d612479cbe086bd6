package matching

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diconnect/diconnect/internal/domain"
)

func participants(n int) []domain.TeamUserMapping {
	users := make([]domain.TeamUserMapping, n)
	for i := range users {
		id := fmt.Sprintf("u%d", i)
		users[i] = domain.TeamUserMapping{
			UserObjectID:      id,
			UserGivenName:     "User " + id,
			UserPrincipalName: id + "@example.org",
			TeamID:            "team-1",
			TeamName:          "Team One",
		}
	}
	return users
}

func pairedIDs(pairs []domain.Pair) map[string]int {
	seen := make(map[string]int)
	for _, p := range pairs {
		seen[p.First.UserObjectID]++
		seen[p.Second.UserObjectID]++
	}
	return seen
}

func TestPrepareMatches_EvenCount(t *testing.T) {
	for _, n := range []int{2, 4, 10, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			pairs := PrepareMatches(rng, participants(n))

			require.Len(t, pairs, n/2)

			seen := pairedIDs(pairs)
			assert.Len(t, seen, n, "every participant must be paired")
			for id, count := range seen {
				assert.Equal(t, 1, count, "participant %s must appear in exactly one pair", id)
			}
		})
	}
}

func TestPrepareMatches_OddCountDropsOne(t *testing.T) {
	for _, n := range []int{3, 5, 101} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			pairs := PrepareMatches(rng, participants(n))

			require.Len(t, pairs, (n-1)/2)

			seen := pairedIDs(pairs)
			assert.Len(t, seen, n-1, "exactly one participant must be left out")
			for id, count := range seen {
				assert.Equal(t, 1, count, "participant %s must appear in exactly one pair", id)
			}
		})
	}
}

func TestPrepareMatches_SmallInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, PrepareMatches(rng, nil))
	assert.Empty(t, PrepareMatches(rng, participants(0)))
	assert.Empty(t, PrepareMatches(rng, participants(1)))
}

func TestPrepareMatches_DeterministicWithSeed(t *testing.T) {
	users := participants(20)

	first := PrepareMatches(rand.New(rand.NewSource(7)), users)
	second := PrepareMatches(rand.New(rand.NewSource(7)), users)

	assert.Equal(t, first, second)
}

func TestPrepareMatches_DoesNotMutateInput(t *testing.T) {
	users := participants(9)
	original := make([]domain.TeamUserMapping, len(users))
	copy(original, users)

	PrepareMatches(rand.New(rand.NewSource(3)), users)

	assert.Equal(t, original, users)
}
