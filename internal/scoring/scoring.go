package scoring

import (
	"strings"

	"github.com/jonathan/career-insights/internal/types"
)

// Weights holds the named scoring parameters. The reference behavior shipped
// inconsistent constants across variants (base 55 vs 60, cap 92 vs 95), so
// the weights are configuration rather than literals; DefaultWeights is the
// canonical set.
type Weights struct {
	Base        int `json:"base"`
	SkillWeight int `json:"skill_weight"`
	ExpWeight   int `json:"exp_weight"`
	Cap         int `json:"cap"`
	PeerBase    int `json:"peer_base"`
	PeerMin     int `json:"peer_min"`
	PeerMax     int `json:"peer_max"`
}

// DefaultWeights returns the canonical scoring parameters
func DefaultWeights() Weights {
	return Weights{
		Base:        60,
		SkillWeight: 5,
		ExpWeight:   3,
		Cap:         92,
		PeerBase:    65,
		PeerMin:     60,
		PeerMax:     95,
	}
}

// SkillMatchCount counts declared skills that contain any of the category's
// core-skill keywords as a case-insensitive substring. A skill matching
// several keywords still contributes exactly 1; a skill matching none
// contributes 0.
func SkillMatchCount(category RoleCategory, skills []string) int {
	core := CoreSkills(category)
	if len(core) == 0 {
		return 0
	}

	count := 0
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		for _, keyword := range core {
			if strings.Contains(skillLower, strings.ToLower(keyword)) {
				count++
				break
			}
		}
	}
	return count
}

// Compute derives the readiness indicators from the role category, declared
// skills, and experience. Malformed numeric input is rejected at the profile
// resolution boundary, so experienceYears is assumed already clamped.
func Compute(w Weights, category RoleCategory, skills []string, experienceYears int) types.ReadinessIndicators {
	skillMatch := SkillMatchCount(category, skills)

	readiness := w.Base + skillMatch*w.SkillWeight + experienceYears*w.ExpWeight
	if readiness > w.Cap {
		readiness = w.Cap
	}
	if readiness < 0 {
		readiness = 0
	}

	promotion := readiness * 85 / 100

	peer := w.PeerBase + (readiness - w.PeerBase)
	if peer < w.PeerMin {
		peer = w.PeerMin
	}
	if peer > w.PeerMax {
		peer = w.PeerMax
	}

	return types.ReadinessIndicators{
		CareerReadiness:    readiness,
		PromotionIndicator: promotion,
		PeerPercentile:     peer,
	}
}
