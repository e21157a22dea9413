package firmlist

// Defaults reproduce the manual export workflow: eight pre-filtered pages,
// one per federal district, saved next to the binary.
const (
	DefaultMinRecords  = 200
	DefaultOutputPath  = "companies.csv"
	DefaultSourceURL   = "https://www.rusprofile.ru/"
	DefaultRevenueYear = "2025"
)

// DefaultInputFiles returns the saved page names in processing order.
func DefaultInputFiles() []string {
	return []string{
		"CFO.html",
		"DVFO.html",
		"SZFO.html",
		"YFO.html",
		"SFO.html",
		"UFO.html",
		"SKFO.html",
		"PFO.html",
	}
}

// Config holds the settings for one export run.
type Config struct {
	// InputFiles are read in order; their records are concatenated.
	InputFiles []string

	// MinRecords is the smallest combined record count that is written out.
	// Smaller batches are reported and discarded.
	MinRecords int

	OutputPath  string
	SourceURL   string
	RevenueYear string
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		InputFiles:  DefaultInputFiles(),
		MinRecords:  DefaultMinRecords,
		OutputPath:  DefaultOutputPath,
		SourceURL:   DefaultSourceURL,
		RevenueYear: DefaultRevenueYear,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if len(c.InputFiles) == 0 {
		return Errorf(EINVALID, "at least one input file required")
	}
	if c.MinRecords < 0 {
		return Errorf(EINVALID, "minimum record count must not be negative")
	}
	if c.OutputPath == "" {
		return Errorf(EINVALID, "output path required")
	}
	return nil
}
