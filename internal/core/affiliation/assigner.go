// Package affiliation assigns service providers, pilgrim groups, and
// family links (spouse and father references) to a sampled population.
package affiliation

import (
	"math/rand"

	"github.com/example/nusuk/internal/core/randutil"
	"github.com/example/nusuk/internal/models"
)

// Group size bounds for pilgrim processing batches.
const (
	GroupSizeMin = 200
	GroupSizeMax = 500
)

// Family link shares. Pairing 12.5% of pilgrims as couples leaves 25% of
// pilgrims with a spouse; 5% of the remainder get a father link.
const (
	spousePairShare = 0.125
	fatherPairShare = 0.05
)

// Providers is the fixed roster of 60 fictional card-handling companies.
var Providers = buildProviders()

func buildProviders() []string {
	prefixes := []string{"Al", "Dar", "Makkah"}
	middles := []string{"Safwa", "Tawfiq", "Rahma", "Noor", "Baraka"}
	suffixes := []string{"Services", "Group", "Travel", "Hajj Co."}

	providers := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		providers = append(providers, prefixes[i%3]+" "+middles[i%5]+" "+suffixes[i%4])
	}
	return providers
}

// Assign sets service_provider and group_id on every person. Pilgrims are
// shuffled and partitioned into contiguous groups of 200-500 members with
// each member independently assigned a provider; workers get providers but
// no group; government and healthcare staff get the Government
// pseudo-provider.
func Assign(r *rand.Rand, persons []*models.Person) {
	byType := make(map[string][]*models.Person)
	for _, p := range persons {
		byType[p.PersonType] = append(byType[p.PersonType], p)
	}

	groupID := 1
	for _, personType := range models.PersonTypes {
		members := byType[personType]
		if len(members) == 0 {
			continue
		}
		r.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})

		switch {
		case models.IsPilgrimType(personType):
			for _, p := range members {
				p.ServiceProvider = randutil.Choice(r, Providers)
			}
			for i := 0; i < len(members); {
				size := randutil.IntBetween(r, GroupSizeMin, GroupSizeMax)
				end := i + size
				if end > len(members) {
					end = len(members)
				}
				for _, p := range members[i:end] {
					p.GroupID = groupID
				}
				groupID++
				i = end
			}
		case personType == models.TypeServiceWorker:
			for _, p := range members {
				p.ServiceProvider = randutil.Choice(r, Providers)
				p.GroupID = models.GroupNone
			}
		default:
			for _, p := range members {
				p.ServiceProvider = models.ProviderGovernment
				p.GroupID = models.GroupNone
			}
		}
	}
}

// LinkFamilies sets spouse and father links among pilgrims. Spouse links are
// mutual; father links point from the later-generated person back to the
// earlier one, which rules out cycles by construction. A person linked in
// one pass is never reused within that pass.
func LinkFamilies(r *rand.Rand, persons []*models.Person) {
	var pilgrims []*models.Person
	for _, p := range persons {
		if models.IsPilgrimType(p.PersonType) {
			pilgrims = append(pilgrims, p)
		}
	}
	if len(pilgrims) < 2 {
		return
	}

	r.Shuffle(len(pilgrims), func(i, j int) {
		pilgrims[i], pilgrims[j] = pilgrims[j], pilgrims[i]
	})

	couples := int(float64(len(pilgrims)) * spousePairShare)
	for i := 0; i+1 < len(pilgrims) && i < couples*2; i += 2 {
		a, b := pilgrims[i], pilgrims[i+1]
		aID, bID := a.PersonID, b.PersonID
		a.SpouseID = &bID
		b.SpouseID = &aID
	}

	remaining := pilgrims[couples*2:]
	parentPairs := int(float64(len(remaining)) * fatherPairShare)
	for i := 0; i+1 < len(remaining) && i < parentPairs*2; i += 2 {
		a, b := remaining[i], remaining[i+1]
		// Child is the later-sampled person; the father pointer always
		// references an earlier person_id.
		father, child := a, b
		if father.PersonID > child.PersonID {
			father, child = child, father
		}
		fatherID := father.PersonID
		child.FatherID = &fatherID
	}
}
