package main

import (
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/plus3/entree/ecs"
)

// buildRandomTree creates a root plus count entities, each attached to a
// random earlier entity whose depth is below maxDepth. Every entity gets
// between one and four random components.
func buildRandomTree(rng *rand.Rand, count, maxDepth int) (*ecs.Entity, error) {
	maxDepth = max(maxDepth, 1)

	total := count + 1
	parent := make([]int, total)
	depth := make([]int, total)
	children := make([][]*ecs.Entity, total)

	// Candidates are entities that may still take children.
	candidates := []int{0}
	parent[0] = -1
	for i := 1; i < total; i++ {
		p := candidates[rng.IntN(len(candidates))]
		parent[i] = p
		depth[i] = depth[p] + 1
		if depth[i] < maxDepth {
			candidates = append(candidates, i)
		}
	}

	// Children always have a higher index than their parent, so building in
	// reverse order completes every subtree before its parent needs it.
	var entity *ecs.Entity
	for i := total - 1; i >= 0; i-- {
		id := "world"
		var components []ecs.Component
		if i > 0 {
			id = "e" + strconv.Itoa(i)
			components = randomComponents(rng)
		}
		slices.Reverse(children[i])

		var err error
		entity, err = ecs.NewEntity(id, components, children[i]...)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			children[parent[i]] = append(children[parent[i]], entity)
		}
	}
	return entity, nil
}

func randomComponents(rng *rand.Rand) []ecs.Component {
	all := []ecs.Component{
		&Position{X: rng.Float64() * 1000, Y: rng.Float64() * 1000},
		&Velocity{DX: rng.Float64()*2 - 1, DY: rng.Float64()*2 - 1},
		&Health{Current: rng.IntN(101), Max: 100},
		&Team{Name: teams[rng.IntN(len(teams))]},
	}
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return all[:rng.IntN(len(all))+1]
}
