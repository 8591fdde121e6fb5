package library

import (
	"fmt"
	"math"
)

// Scores are the university ratings that drive an enrolling class.
type Scores struct {
	AcademicPrestige float64
	ResearchPrestige float64
	Popularity       float64
}

// Enrollment is the outcome of one enrollment step. Every stage is rounded
// to a whole number the way the game consumes it.
type Enrollment struct {
	TargetTuition     float64
	TuitionBonus      float64
	PopulationSize    float64
	MeanAcademicScore float64
}

// Enroll chains the library curves for a proposed tuition ($/yr):
//  1. target tuition from academic + research prestige (clamped to its range)
//  2. tuition bonus from target tuition minus tuition
//  3. population size from popularity + bonus (clamped to its range)
//  4. mean academic score from academic prestige
func (l *Library) Enroll(tuition float64, s Scores) (Enrollment, error) {
	target, err := l.tuitionScore.Map(s.AcademicPrestige + s.ResearchPrestige)
	if err != nil {
		return Enrollment{}, fmt.Errorf("enroll: %s: %w", TargetTuition, err)
	}
	target = math.Round(target)

	bonus, err := l.Eval(TuitionBonus, target-tuition)
	if err != nil {
		return Enrollment{}, fmt.Errorf("enroll: %w", err)
	}
	bonus = math.Round(bonus)

	size, err := l.popularity.Map(s.Popularity + bonus)
	if err != nil {
		return Enrollment{}, fmt.Errorf("enroll: %s: %w", PopulationSize, err)
	}

	mean, err := l.Eval(PrestigeToMean, s.AcademicPrestige)
	if err != nil {
		return Enrollment{}, fmt.Errorf("enroll: %w", err)
	}

	return Enrollment{
		TargetTuition:     target,
		TuitionBonus:      bonus,
		PopulationSize:    math.Round(size),
		MeanAcademicScore: math.Round(mean),
	}, nil
}
