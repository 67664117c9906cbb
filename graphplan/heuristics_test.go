package graphplan_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/strata/graphplan"
	"github.com/katalvlaran/strata/strips"
)

// HeuristicSuite exercises the three goal estimates on small domains.
type HeuristicSuite struct {
	suite.Suite
}

// TestCakeDomain pins the classic values: Have(Cake) is free, Eaten(Cake)
// costs one level, and the pair only becomes mutex-free at level 2.
func (s *HeuristicSuite) TestCakeDomain() {
	p, state := cakeProblem()
	g, err := graphplan.New(p, state)
	require.NoError(s.T(), err)

	sum, err := g.LevelSum()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, sum)

	max, err := g.MaxLevel()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, max)

	set, err := g.SetLevel()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, set)
}

// TestStaggeredGoals covers the two-goal scenario with A at level 1 and B
// at level 2, non-mutex there: level-sum 3, max-level 2, set-level 2.
func (s *HeuristicSuite) TestStaggeredGoals() {
	p, state := chainProblem()
	g, err := graphplan.New(p, state)
	require.NoError(s.T(), err)

	sum, err := g.LevelSum()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, sum)

	max, err := g.MaxLevel()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, max)

	set, err := g.SetLevel()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, set)

	// admissibility ordering among the estimates
	require.GreaterOrEqual(s.T(), sum, max)
	require.GreaterOrEqual(s.T(), set, max)
}

// TestGoalsAtLevelZero: goals already satisfied cost nothing, and the lazy
// queries must not grow the graph to find that out.
func (s *HeuristicSuite) TestGoalsAtLevelZero() {
	p, state := cakeProblem()
	p.Goal = []strips.Literal{strips.Pos("Have(Cake)"), strips.Neg("Eaten(Cake)")}
	g, err := graphplan.New(p, state)
	require.NoError(s.T(), err)

	for name, h := range map[string]func() (int, error){
		"LevelSum": g.LevelSum,
		"MaxLevel": g.MaxLevel,
		"SetLevel": g.SetLevel,
	} {
		v, err := h()
		require.NoError(s.T(), err, name)
		require.Zero(s.T(), v, name)
	}
	require.Equal(s.T(), 1, g.Levels(), "no expansion should have happened")
}

// TestSingleGoal: with exactly one goal literal, level-sum equals max-level.
func (s *HeuristicSuite) TestSingleGoal() {
	p, state := chainProblem()
	p.Goal = []strips.Literal{strips.Pos("B")}
	g, err := graphplan.New(p, state)
	require.NoError(s.T(), err)

	sum, err := g.LevelSum()
	require.NoError(s.T(), err)
	max, err := g.MaxLevel()
	require.NoError(s.T(), err)
	require.Equal(s.T(), sum, max)
	require.Equal(s.T(), 2, sum)
}

// TestUnreachableGoal: a goal no action produces surfaces as an error from
// every query once the graph levels out — never as a number.
func (s *HeuristicSuite) TestUnreachableGoal() {
	p, state := deadEndProblem()
	g, err := graphplan.New(p, state)
	require.NoError(s.T(), err)

	_, err = g.LevelSum()
	require.ErrorIs(s.T(), err, graphplan.ErrGoalUnreachable)

	_, err = g.MaxLevel()
	require.ErrorIs(s.T(), err, graphplan.ErrGoalUnreachable)

	_, err = g.SetLevel()
	require.ErrorIs(s.T(), err, graphplan.ErrNoSetLevel)

	require.True(s.T(), g.Leveled(), "queries must have exhausted the graph")
}

// TestIgnoreMutexes: skipping inconsistent support lets the cake goals
// coexist a level earlier.
func (s *HeuristicSuite) TestIgnoreMutexes() {
	p, state := cakeProblem()
	g, err := graphplan.New(p, state, graphplan.WithIgnoreMutexes(true))
	require.NoError(s.T(), err)

	set, err := g.SetLevel()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, set)
}

// TestLevelCost exposes the underlying per-literal query.
func (s *HeuristicSuite) TestLevelCost() {
	p, state := chainProblem()
	g, err := graphplan.New(p, state)
	require.NoError(s.T(), err)

	for lit, want := range map[strips.Literal]int{
		strips.Pos("P"): 0,
		strips.Pos("A"): 1,
		strips.Pos("B"): 2,
		strips.Neg("A"): 0,
	} {
		cost, err := g.LevelCost(lit)
		require.NoError(s.T(), err, lit)
		require.Equal(s.T(), want, cost, lit)
	}
}

// TestDuplicateGoals: the goal is a set; repeats neither double-count the
// sum nor trip the pairwise mutex scan.
func (s *HeuristicSuite) TestDuplicateGoals() {
	p, state := chainProblem()
	p.Goal = []strips.Literal{strips.Pos("A"), strips.Pos("A"), strips.Pos("B")}
	g, err := graphplan.New(p, state)
	require.NoError(s.T(), err)

	sum, err := g.LevelSum()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, sum)

	set, err := g.SetLevel()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, set)
}

func TestHeuristicSuite(t *testing.T) {
	suite.Run(t, new(HeuristicSuite))
}
