// internal/scoring/calculator.go
package scoring

import (
	"sort"

	"github.com/seasaltgame/seasalt/internal/models"
)

// This package is stateless: every function scores a snapshot of cards and
// never touches game state. The snapshot for a player is their hand plus
// played-effect cards (models.Game.CardsByPlayer).

// DuoScore scores pair cards. Crab, fish and ship pair with themselves, one
// point per pair. Swimmers and sharks pair across kinds: a swimmer only
// scores against a shark and vice versa.
func DuoScore(cards []models.Card) int {
	counts := make(map[models.Duo]int)
	for _, c := range cards {
		if c.Kind.Category == models.CategoryDuo {
			counts[c.Kind.Duo]++
		}
	}

	score := counts[models.DuoCrab]/2 + counts[models.DuoFish]/2 + counts[models.DuoShip]/2
	score += min(counts[models.DuoSwimmer], counts[models.DuoShark])
	return score
}

// Collector points are lookup tables keyed by count held, not formulas.
// Counts outside a kind's table score 0: the game stops rewarding a
// collection past its printed cap.
var collectorPoints = map[models.Collector]map[int]int{
	models.CollectorShell:   {1: 0, 2: 2, 3: 4, 4: 6, 5: 8},
	models.CollectorOctopus: {1: 0, 2: 3, 3: 6, 4: 9, 5: 12, 6: 15},
	models.CollectorPenguin: {1: 1, 2: 3, 3: 5},
	models.CollectorSailor:  {1: 0, 2: 5},
}

// CollectorScore scores each collector kind held via its points table.
func CollectorScore(cards []models.Card) int {
	counts := make(map[models.Collector]int)
	for _, c := range cards {
		if c.Kind.Category == models.CategoryCollector {
			counts[c.Kind.Collector]++
		}
	}

	score := 0
	for kind, count := range counts {
		score += collectorPoints[kind][count]
	}
	return score
}

// multiplierValue is the fixed per-card value of each multiplier kind.
var multiplierValue = map[models.Multiplier]int{
	models.MultiplierShip:    1,
	models.MultiplierFish:    1,
	models.MultiplierPenguin: 2,
	models.MultiplierSailor:  3,
}

// multiplierTarget maps a multiplier to the base kind it counts.
var multiplierTarget = map[models.Multiplier]models.Kind{
	models.MultiplierShip:    models.DuoKind(models.DuoShip),
	models.MultiplierFish:    models.DuoKind(models.DuoFish),
	models.MultiplierPenguin: models.CollectorKind(models.CollectorPenguin),
	models.MultiplierSailor:  models.CollectorKind(models.CollectorSailor),
}

// MultiplierScore scores each multiplier held as value x count of matching
// base cards. Holding two of the same multiplier doubles the bonus.
func MultiplierScore(cards []models.Card) int {
	score := 0
	for _, c := range cards {
		if c.Kind.Category != models.CategoryMultiplier {
			continue
		}
		target := multiplierTarget[c.Kind.Multiplier]
		matching := 0
		for _, other := range cards {
			if other.Kind == target {
				matching++
			}
		}
		score += multiplierValue[c.Kind.Multiplier] * matching
	}
	return score
}

// colorGroupSizes returns the sizes of the player's non-mermaid, non-white
// color groups, largest first.
func colorGroupSizes(cards []models.Card) []int {
	groups := make(map[models.Color]int)
	for _, c := range cards {
		if c.Kind.IsMermaid() || c.Color == models.ColorWhite {
			continue
		}
		groups[c.Color]++
	}

	sizes := make([]int, 0, len(groups))
	for _, n := range groups {
		sizes = append(sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}

// MermaidScore converts each mermaid held into the player's next-largest
// color group: the Mth mermaid scores the size of the Mth-ranked group, and
// ranks beyond the available groups contribute nothing.
func MermaidScore(cards []models.Card) int {
	mermaids := 0
	for _, c := range cards {
		if c.Kind.IsMermaid() {
			mermaids++
		}
	}
	if mermaids == 0 {
		return 0
	}

	sizes := colorGroupSizes(cards)
	score := 0
	for i := 0; i < mermaids && i < len(sizes); i++ {
		score += sizes[i]
	}
	return score
}

// ColorBonus is the mermaid formula with a single mermaid: the size of the
// player's largest color group. It is the consolation score in a last-chance
// bet.
func ColorBonus(cards []models.Card) int {
	sizes := colorGroupSizes(cards)
	if len(sizes) == 0 {
		return 0
	}
	return sizes[0]
}

// StopScore is a player's full round score at the moment scoring runs.
func StopScore(cards []models.Card) int {
	if len(cards) == 0 {
		return 0
	}
	return DuoScore(cards) + CollectorScore(cards) + MultiplierScore(cards) + MermaidScore(cards)
}

// StopPoints computes every player's round points for a round ended by stop.
func StopPoints(byPlayer map[models.PlayerID][]models.Card) map[models.PlayerID]int {
	points := make(map[models.PlayerID]int, len(byPlayer))
	for pid, cards := range byPlayer {
		points[pid] = StopScore(cards)
	}
	return points
}

// LastChancePoints resolves a last-chance bet. The caller wins iff their
// stop score is at least every other player's stop score (ties win). A
// winning caller keeps their full score plus their color bonus while
// everyone else drops to bonus only; a losing caller drops to bonus only
// while everyone else keeps their full score.
func LastChancePoints(caller models.PlayerID, byPlayer map[models.PlayerID][]models.Card) map[models.PlayerID]int {
	stop := make(map[models.PlayerID]int, len(byPlayer))
	bonus := make(map[models.PlayerID]int, len(byPlayer))
	for pid, cards := range byPlayer {
		stop[pid] = StopScore(cards)
		bonus[pid] = ColorBonus(cards)
	}

	callerWins := true
	for pid, s := range stop {
		if pid != caller && s > stop[caller] {
			callerWins = false
			break
		}
	}

	points := make(map[models.PlayerID]int, len(byPlayer))
	for pid := range byPlayer {
		switch {
		case pid == caller && callerWins:
			points[pid] = stop[pid] + bonus[pid]
		case pid == caller:
			points[pid] = bonus[pid]
		case callerWins:
			points[pid] = bonus[pid]
		default:
			points[pid] = stop[pid]
		}
	}
	return points
}

// WinThreshold is the match-point target for a given table size.
func WinThreshold(count models.InGameCount) int {
	switch count {
	case models.ThreePlayers:
		return 35
	case models.FourPlayers:
		return 30
	default:
		return 40
	}
}

// MatchWinner sums each player's points across completed rounds and reports
// the winner, if any. A winner needs the highest total and that total must
// meet the table's threshold. Ties at the top are broken by scanning
// completed rounds newest to oldest, narrowing to the players with the best
// score in that round; if the tie survives every round there is no winner.
func MatchWinner(rounds []*models.Round, count models.InGameCount) (models.PlayerID, bool) {
	var completed []*models.Round
	for _, r := range rounds {
		if r.State == models.RoundComplete {
			completed = append(completed, r)
		}
	}
	if len(completed) == 0 {
		return 0, false
	}

	totals := make(map[models.PlayerID]int)
	for _, pid := range models.PlayerOrder(count) {
		totals[pid] = 0
	}
	for _, r := range completed {
		for pid, pts := range r.Points {
			totals[pid] += pts
		}
	}

	best := 0
	for _, total := range totals {
		if total > best {
			best = total
		}
	}
	if best < WinThreshold(count) {
		return 0, false
	}

	candidates := make(map[models.PlayerID]struct{})
	for pid, total := range totals {
		if total == best {
			candidates[pid] = struct{}{}
		}
	}

	for i := len(completed) - 1; i >= 0 && len(candidates) > 1; i-- {
		r := completed[i]
		roundBest := 0
		first := true
		for pid := range candidates {
			if first || r.Points[pid] > roundBest {
				roundBest = r.Points[pid]
				first = false
			}
		}
		for pid := range candidates {
			if r.Points[pid] < roundBest {
				delete(candidates, pid)
			}
		}
	}

	if len(candidates) != 1 {
		return 0, false
	}
	for pid := range candidates {
		return pid, true
	}
	return 0, false
}
