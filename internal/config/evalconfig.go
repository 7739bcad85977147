package config

// evalConfiguration holds the weights the evaluator (component E) blends
// together. Pawn-structure/king-safety/mobility terms the teacher carries
// are dropped per SPEC_FULL.md's domain expansion; only material, PST and
// a small mobility/tempo bonus survive.
type evalConfiguration struct {
	UseMaterial  bool
	UsePST       bool
	UseMobility  bool
	MobilityUnit int
	TempoBonus   int

	UseInsufficientMaterial bool
}

func init() {
	Settings.Eval.UseMaterial = true
	Settings.Eval.UsePST = true
	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityUnit = 2
	Settings.Eval.TempoBonus = 10

	Settings.Eval.UseInsufficientMaterial = true
}
