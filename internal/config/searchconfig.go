package config

// searchConfiguration holds the tunable knobs of the search named in
// spec.md §6.4, plus the move-ordering toggles §4.G requires.
type searchConfiguration struct {
	UseQuiescence bool
	UsePVS        bool

	UseTT      bool
	TTSizeMB   int
	UseTTMove  bool
	UseTTValue bool

	UseKiller  bool
	UseHistory bool

	// NullMoveEnabled is named in spec.md §6.4 but the reduction/verification
	// search it implies is explicitly not required (spec.md §9); kept as a
	// config field for embedder parity but unused by the search.
	NullMoveEnabled bool

	Seed int64
}

func init() {
	Settings.Search.UseQuiescence = true
	Settings.Search.UsePVS = true

	Settings.Search.UseTT = true
	Settings.Search.TTSizeMB = 64
	Settings.Search.UseTTMove = true
	Settings.Search.UseTTValue = true

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true

	Settings.Search.NullMoveEnabled = false

	Settings.Search.Seed = 1070372
}
