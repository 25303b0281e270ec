package models

import (
	"errors"

	"github.com/agenda-pro/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalPeriod is the earning window a goal applies to.
type GoalPeriod string

const (
	GoalPeriodWeek  GoalPeriod = "week"
	GoalPeriodMonth GoalPeriod = "month"
)

// ParseGoalPeriod parses a goal period from its string representation.
func ParseGoalPeriod(s string) (GoalPeriod, error) {
	period := GoalPeriod(s)
	if period != GoalPeriodWeek && period != GoalPeriodMonth {
		return "", ErrGoalPeriodInvalid
	}

	return period, nil
}

// GoalTier is the qualitative progress feedback for a goal. The tiers
// partition the percent range totally, with no gaps or overlaps.
type GoalTier string

const (
	GoalTierStart       GoalTier = "inicio"         // 0
	GoalTierGoodStart   GoalTier = "bom-comeco"     // (0, 25)
	GoalTierOnTrack     GoalTier = "no-caminho"     // [25, 50)
	GoalTierPastHalfway GoalTier = "passou-metade"  // [50, 75)
	GoalTierAlmostThere GoalTier = "quase-la"       // [75, 100)
	GoalTierReached     GoalTier = "meta-alcancada" // >= 100
)

// Goal is a user-set earning target for a period. At most one goal exists
// per period, setting a new one overwrites the previous target.
type Goal struct {
	DefaultModel
	Period GoalPeriod
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The target for the goal
}

// AfterSave validates the goal. An error rolls back the save, so a rejected
// goal never overwrites the stored one.
func (g *Goal) AfterSave(_ *gorm.DB) error {
	if g.Period != GoalPeriodWeek && g.Period != GoalPeriodMonth {
		return ErrGoalPeriodInvalid
	}

	if !g.Amount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	return nil
}

// SetGoal stores the target for a period, overwriting any previous goal for
// the same period.
func SetGoal(db *gorm.DB, period GoalPeriod, target decimal.Decimal) (Goal, error) {
	goal := Goal{Period: period, Amount: target}

	var existing Goal
	err := db.Where("goals.period = ?", period).First(&existing).Error
	if err == nil {
		goal.DefaultModel = existing.DefaultModel
		err = db.Save(&goal).Error
		return goal, err
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Goal{}, err
	}

	err = db.Create(&goal).Error
	return goal, err
}

// GoalForPeriod returns the stored goal for a period.
func GoalForPeriod(db *gorm.DB, period GoalPeriod) (Goal, error) {
	var goal Goal

	err := db.Where("goals.period = ?", period).First(&goal).Error
	if err != nil {
		return Goal{}, err
	}

	return goal, nil
}

// GoalProgress is the derived progress of a goal against the earnings of its
// period.
type GoalProgress struct {
	Period    GoalPeriod      `json:"period" example:"week"`
	Target    decimal.Decimal `json:"target" example:"1000"`
	Earned    decimal.Decimal `json:"earned" example:"250"`
	Percent   int64           `json:"percent" example:"25"`    // Capped at 100
	Reached   bool            `json:"reached" example:"false"` // Independent of the capped percent
	Remaining decimal.Decimal `json:"remaining" example:"750"` // Zero once the goal is reached
	Tier      GoalTier        `json:"tier" example:"no-caminho"`
}

// Progress derives the progress for the stored goal of a period, using the
// week or month containing the reference date as the earning window.
func Progress(db *gorm.DB, period GoalPeriod, ref types.Date) (GoalProgress, error) {
	goal, err := GoalForPeriod(db, period)
	if err != nil {
		return GoalProgress{}, err
	}

	var earned decimal.Decimal
	switch period {
	case GoalPeriodWeek:
		earned, err = WeekEarned(db, ref)
	case GoalPeriodMonth:
		earned, err = MonthEarned(db, ref.Month())
	default:
		return GoalProgress{}, ErrGoalPeriodInvalid
	}

	if err != nil {
		return GoalProgress{}, err
	}

	return newGoalProgress(goal, earned), nil
}

func newGoalProgress(goal Goal, earned decimal.Decimal) GoalProgress {
	percent := earned.Div(goal.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if percent > 100 {
		percent = 100
	}

	reached := earned.GreaterThanOrEqual(goal.Amount)

	remaining := decimal.Zero
	if !reached {
		remaining = goal.Amount.Sub(earned)
	}

	return GoalProgress{
		Period:    goal.Period,
		Target:    goal.Amount,
		Earned:    earned,
		Percent:   percent,
		Reached:   reached,
		Remaining: remaining,
		Tier:      TierForPercent(percent),
	}
}

// TierForPercent returns the qualitative tier for a capped progress percent.
func TierForPercent(percent int64) GoalTier {
	switch {
	case percent >= 100:
		return GoalTierReached
	case percent >= 75:
		return GoalTierAlmostThere
	case percent >= 50:
		return GoalTierPastHalfway
	case percent >= 25:
		return GoalTierOnTrack
	case percent > 0:
		return GoalTierGoodStart
	default:
		return GoalTierStart
	}
}
