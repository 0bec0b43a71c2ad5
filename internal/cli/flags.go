package cli

import "etd/internal/config"

// Flags holds command-line flags
type Flags struct {
	TestPath     string
	NameFilter   string
	Grep         string
	TestCases    bool
	OpenFailures bool
	ListenAddr   string
	TimeoutSecs  int
	Verbose      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		TestPath:     f.TestPath,
		NameFilter:   f.NameFilter,
		Grep:         f.Grep,
		TestCases:    f.TestCases,
		OpenFailures: f.OpenFailures,
		ListenAddr:   f.ListenAddr,
		TimeoutSecs:  f.TimeoutSecs,
	}
}
