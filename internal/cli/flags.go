package cli

import (
	"flag"
	"fmt"
	"os"

	"yplus-tool/internal/yplus"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config if no arguments are given (use GUI), and flag.ErrHelp
// after printing usage if help was requested.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, flag.ErrHelp
	}

	cfg := &RunnerConfig{}

	fs := flag.NewFlagSet("yplus-tool", flag.ContinueOnError)
	fs.Usage = PrintUsage

	// Inputs
	fs.StringVar(&cfg.Fields.Velocity, "u", "", "Characteristic velocity [m/s]")
	fs.StringVar(&cfg.Fields.Velocity, "velocity", "", "Characteristic velocity [m/s]")
	fs.StringVar(&cfg.Fields.Density, "rho", "", "Fluid density [kg/m^3]")
	fs.StringVar(&cfg.Fields.Density, "density", "", "Fluid density [kg/m^3]")
	fs.StringVar(&cfg.Fields.Viscosity, "mu", "", "Dynamic viscosity [Pa*s]")
	fs.StringVar(&cfg.Fields.Viscosity, "viscosity", "", "Dynamic viscosity [Pa*s]")
	fs.StringVar(&cfg.Fields.Length, "L", "", "Characteristic length [m]")
	fs.StringVar(&cfg.Fields.Length, "length", "", "Characteristic length [m]")
	fs.StringVar(&cfg.Fields.YPlus, "yplus", "", "Target Y+")
	fs.StringVar(&cfg.Fields.YPlus, "target", "", "Target Y+")

	// Mode and output
	fs.StringVar(&cfg.ConfigPath, "config", "", "INI file with default values")
	fs.BoolVar(&cfg.GUI, "gui", false, "Open the form instead of printing a result")
	fs.BoolVar(&cfg.Quiet, "q", false, "Print only the two derived values")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the two derived values")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected argument %q\n\n", fs.Arg(0))
		PrintUsage()
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Remember which inputs were given so config defaults only fill the rest
	cfg.explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "u", "velocity":
			cfg.explicit[yplus.FieldVelocity] = true
		case "rho", "density":
			cfg.explicit[yplus.FieldDensity] = true
		case "mu", "viscosity":
			cfg.explicit[yplus.FieldViscosity] = true
		case "L", "length":
			cfg.explicit[yplus.FieldLength] = true
		case "yplus", "target":
			cfg.explicit[yplus.FieldYPlus] = true
		}
	})

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Y+ Tool - first layer height for a target Y+

Usage: yplus-tool [flags]
       yplus-tool            (open the form)
       yplus-tool help       (show this message)

INPUTS:
  -u, -velocity <m/s>      Characteristic velocity (default: 1.0)
  -rho, -density <kg/m3>   Fluid density (default: 1.205)
  -mu, -viscosity <Pa s>   Dynamic viscosity (default: 1.82e-5)
  -L, -length <m>          Characteristic length (default: 1.0)
  -yplus, -target <y+>     Target Y+ (default: 1.0)

OPTIONS:
  -config <file>           INI file with default inputs (or $YPLUS_CONFIG)
  -gui                     Open the form using -config defaults
  -q, -quiet               Print only Reynolds number and first layer height
  -v, -verbose             Log the calculation to stderr

All inputs must be finite and greater than zero. Invalid inputs print NaN
and exit with status 1.

EXAMPLES:
  # Air at 20 m/s over a 2 m plate, wall-resolved
  yplus-tool -u 20 -L 2 -yplus 1

  # Water, wall functions
  yplus-tool -u 2 -rho 998.2 -mu 1.002e-3 -L 0.5 -yplus 30

  # Open the form with site defaults
  yplus-tool -config ~/.config/yplus.ini -gui

`)
}
