package scene

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggest 在候选中找出与 input 编辑距离最近的一个，超出容忍范围时返回 false
func suggest(input string, candidates []string) (string, bool) {
	if len(input) < 3 {
		return "", false
	}

	needle := strings.ToLower(input)
	best, bestDist := "", -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(cand))
		if dist > distanceLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
