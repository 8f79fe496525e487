package app

import (
	"flag"
	"io"
	"strconv"

	"salescli/internal/config"
	"salescli/internal/validation"
)

// Options are the command-line options of one run
type Options struct {
	File          string  `flag:"file" validate:"required"`
	Summary       bool    `flag:"summary"`
	HolidayImpact bool    `flag:"holiday-impact"`
	Forecast      bool    `flag:"forecast"`
	SafetyStock   bool    `flag:"safety-stock"`
	Store         int     `flag:"store"`
	Weeks         int     `flag:"weeks" validate:"gte=1"`
	Lead          float64 `flag:"lead" validate:"gte=0"`
	ServiceFactor float64 `flag:"service-factor" validate:"gt=0"`
	Top           int     `flag:"top" validate:"gte=0"`
	OutDir        string  `flag:"out" validate:"required"`
	ConfigPath    string  `flag:"config"`
	ShowVersion   bool    `flag:"version"`

	// explicit records the flags given on the command line
	explicit map[string]bool
}

// DefaultOptions returns the options implied by cfg alone
func DefaultOptions(cfg *config.Config) Options {
	return Options{
		Store:         cfg.Analysis.Store,
		Weeks:         cfg.Analysis.Window,
		Lead:          cfg.Analysis.LeadTimeWeeks,
		ServiceFactor: cfg.Analysis.ServiceFactor,
		Top:           cfg.Output.TopN,
		OutDir:        cfg.Output.Dir,
	}
}

// ParseArgs parses command-line arguments. Defaults come from the built-in
// configuration; call ApplyConfig once the configuration file is known.
func ParseArgs(name string, args []string, output io.Writer) (Options, error) {
	opts := DefaultOptions(config.Default())

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.File, "file", "", "path to the sales CSV or .xlsx file (required)")
	fs.BoolVar(&opts.Summary, "summary", false, "write per-store summary statistics")
	fs.BoolVar(&opts.HolidayImpact, "holiday-impact", false, "compare holiday and non-holiday weekly sales")
	fs.BoolVar(&opts.Forecast, "forecast", false, "print a moving-average forecast for --store")
	fs.BoolVar(&opts.SafetyStock, "safety-stock", false, "write safety stock and reorder point for --store")
	fs.IntVar(&opts.Store, "store", opts.Store, "store id to forecast and estimate")
	fs.IntVar(&opts.Weeks, "weeks", opts.Weeks, "moving-average window in weeks")
	fs.Float64Var(&opts.Lead, "lead", opts.Lead, "replenishment lead time in weeks")
	fs.Float64Var(&opts.ServiceFactor, "service-factor", opts.ServiceFactor, "service level z-factor for safety stock")
	fs.IntVar(&opts.Top, "top", opts.Top, "summary rows printed to the console (0 prints all)")
	fs.StringVar(&opts.OutDir, "out", opts.OutDir, "output directory for CSV reports")
	fs.StringVar(&opts.ConfigPath, "config", "", "path to a YAML configuration file")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opts.explicit[f.Name] = true
	})
	return opts, nil
}

// ApplyConfig fills every option not given on the command line from cfg
func (o *Options) ApplyConfig(cfg *config.Config) {
	defaults := DefaultOptions(cfg)
	if !o.explicit["store"] {
		o.Store = defaults.Store
	}
	if !o.explicit["weeks"] {
		o.Weeks = defaults.Weeks
	}
	if !o.explicit["lead"] {
		o.Lead = defaults.Lead
	}
	if !o.explicit["service-factor"] {
		o.ServiceFactor = defaults.ServiceFactor
	}
	if !o.explicit["top"] {
		o.Top = defaults.Top
	}
	if !o.explicit["out"] {
		o.OutDir = defaults.OutDir
	}
}

// Validate checks option values
func (o Options) Validate() error {
	return validation.New().Validate(o)
}

// StoreID is the store identifier as it appears in a loaded table
func (o Options) StoreID() string {
	return strconv.Itoa(o.Store)
}

// AnyAnalysis reports whether at least one analysis was requested
func (o Options) AnyAnalysis() bool {
	return o.Summary || o.HolidayImpact || o.Forecast || o.SafetyStock
}
