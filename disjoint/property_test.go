// SPDX-License-Identifier: MIT

package disjoint_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disjoint/builder"
	"github.com/katalvlaran/disjoint/core"
	"github.com/katalvlaran/disjoint/disjoint"
)

// randomGraph builds a seeded directed graph on n0..n{n-1} with integer
// weights in [1,9], so distance sums are exact.
func randomGraph(t testing.TB, seed int64, n int, p float64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.Option{
			builder.WithSeed(seed),
			builder.WithIDScheme(builder.PrefixID("n")),
			builder.WithIntWeight(1, 9),
		},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return g
}

// simplePaths enumerates every simple path source → target.
func simplePaths(g *core.Graph, source, target string) [][]string {
	var out [][]string
	onPath := map[string]bool{source: true}
	path := []string{source}

	var walk func(u string)
	walk = func(u string) {
		if u == target {
			out = append(out, append([]string(nil), path...))
			return
		}
		succ, _ := g.SuccessorIDs(u)
		for _, v := range succ {
			if onPath[v] {
				continue
			}
			onPath[v] = true
			path = append(path, v)
			walk(v)
			path = path[:len(path)-1]
			onPath[v] = false
		}
	}
	walk(source)

	return out
}

// usage lists what a path must not share with another one.
func usage(p []string, mode disjoint.Mode) []string {
	var keys []string
	for i := 0; i+1 < len(p); i++ {
		keys = append(keys, p[i]+">"+p[i+1])
	}
	if mode == disjoint.NodeDisjoint {
		keys = append(keys, p[1:len(p)-1]...)
	}

	return keys
}

func pathLength(t testing.TB, g *core.Graph, p []string) float64 {
	t.Helper()
	var d float64
	for i := 0; i+1 < len(p); i++ {
		w, err := g.Weight(p[i], p[i+1])
		require.NoError(t, err)
		d += w
	}

	return d
}

// bruteForce returns the minimum total distance of k disjoint paths (ok=false
// if none exist) and the largest number of disjoint paths available.
func bruteForce(t testing.TB, g *core.Graph, source, target string, k int, mode disjoint.Mode) (best float64, ok bool, most int) {
	t.Helper()
	paths := simplePaths(g, source, target)
	lengths := make([]float64, len(paths))
	for i, p := range paths {
		lengths[i] = pathLength(t, g, p)
	}

	used := map[string]bool{}
	var pick func(start, depth int, total float64)
	pick = func(start, depth int, total float64) {
		if depth > most {
			most = depth
		}
		if depth == k {
			if !ok || total < best {
				best, ok = total, true
			}
			return
		}
		for i := start; i < len(paths); i++ {
			keys := usage(paths[i], mode)
			clash := false
			for _, key := range keys {
				if used[key] {
					clash = true
					break
				}
			}
			if clash {
				continue
			}
			for _, key := range keys {
				used[key] = true
			}
			pick(i+1, depth+1, total+lengths[i])
			for _, key := range keys {
				used[key] = false
			}
		}
	}
	pick(0, 0, 0)

	return best, ok, most
}

// requireDisjoint checks pairwise disjointness and the reported distances.
func requireDisjoint(t testing.TB, g *core.Graph, res *disjoint.Result, mode disjoint.Mode) {
	t.Helper()
	seen := map[string]int{}
	for i, p := range res.Paths {
		require.InDelta(t, pathLength(t, g, p.Nodes), p.Distance, 1e-9, "round-trip distance of path %d", i)
		for _, key := range usage(p.Nodes, mode) {
			prev, dup := seen[key]
			require.False(t, dup, "paths %d and %d share %s", prev, i, key)
			seen[key] = i
		}
	}
}

func TestBhandari_MinimalAgainstBruteForce(t *testing.T) {
	modes := []disjoint.Mode{disjoint.EdgeDisjoint, disjoint.NodeDisjoint}

	for seed := int64(1); seed <= 80; seed++ {
		n := 5 + int(seed%4)
		g := randomGraph(t, seed, n, 0.45)
		src, dst := "n0", fmt.Sprintf("n%d", n-1)

		for _, mode := range modes {
			for _, k := range []int{2, 3} {
				name := fmt.Sprintf("seed=%d/n=%d/%s/k=%d", seed, n, mode, k)
				best, ok, most := bruteForce(t, g, src, dst, k, mode)

				res, err := disjoint.Bhandari(g, src, dst, disjoint.WithK(k), disjoint.WithMode(mode))
				if !ok {
					var inf *disjoint.InfeasibleError
					require.ErrorAs(t, err, &inf, name)
					require.Equal(t, most, inf.Found, name)
					continue
				}
				require.NoError(t, err, name)
				require.Len(t, res.Paths, k, name)
				require.InDelta(t, best, res.Total(), 1e-9, name)
				requireDisjoint(t, g, res, mode)

				for i := 1; i < len(res.Paths); i++ {
					require.LessOrEqual(t, res.Paths[i-1].Distance, res.Paths[i].Distance, name)
				}
			}
		}
	}
}

func TestBhandari_MonotonicInfeasibility(t *testing.T) {
	checked := 0
	for seed := int64(100); seed < 160; seed++ {
		g := randomGraph(t, seed, 7, 0.4)
		_, err := disjoint.Bhandari(g, "n0", "n6", disjoint.WithK(4))

		var inf *disjoint.InfeasibleError
		if !errors.As(err, &inf) {
			continue
		}
		for k := 2; k <= inf.Found; k++ {
			res, err := disjoint.Bhandari(g, "n0", "n6", disjoint.WithK(k))
			require.NoError(t, err, "seed=%d k=%d found=%d", seed, k, inf.Found)
			require.Len(t, res.Paths, k)
			checked++
		}
	}
	require.Positive(t, checked)
}

func TestBhandari_NodeModeIdempotent(t *testing.T) {
	for seed := int64(200); seed < 230; seed++ {
		g := randomGraph(t, seed, 8, 0.5)
		first, err1 := disjoint.Bhandari(g, "n0", "n7", disjoint.WithMode(disjoint.NodeDisjoint))
		second, err2 := disjoint.Bhandari(g, "n0", "n7", disjoint.WithMode(disjoint.NodeDisjoint))

		require.Equal(t, err1, err2, "seed=%d", seed)
		require.Equal(t, first, second, "seed=%d", seed)
	}
}

func TestBhandari_ConcurrentQueries(t *testing.T) {
	g := randomGraph(t, 7, 8, 0.5)
	want, wantErr := disjoint.Bhandari(g, "n0", "n7", disjoint.WithMode(disjoint.NodeDisjoint))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			got, err := disjoint.Bhandari(g, "n0", "n7", disjoint.WithMode(disjoint.NodeDisjoint))
			assert.Equal(t, wantErr, err)
			assert.Equal(t, want, got)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func BenchmarkBhandari(b *testing.B) {
	g := randomGraph(b, 42, 60, 0.1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = disjoint.Bhandari(g, "n0", "n59", disjoint.WithK(2))
	}
}
