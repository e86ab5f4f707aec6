package main

import (
	"fmt"
	"strconv"

	svmverify "github.com/abstractsvm/svmverify"
	"github.com/abstractsvm/svmverify/domain"
)

// perturbationKind names the §6 CLI perturbation vocabulary, kept
// separate from region.Kind since the CLI also recognizes "clipped_
// hyperrectangle" and "from_file" by their external, underscored names.
type perturbationKind string

const (
	perturbL1          perturbationKind = "l_one"
	perturbLInf        perturbationKind = "l_inf"
	perturbFrame       perturbationKind = "frame"
	perturbClippedRect perturbationKind = "clipped_hyperrectangle"
	perturbFromFile    perturbationKind = "from_file"
)

// cliArgs is the parsed form of the positional-plus-flags invocation
// spec.md §6 describes.
type cliArgs struct {
	SVMPath     string
	DatasetPath string
	Abstraction domain.Kind

	Perturbation     perturbationKind
	PerturbationArgs []string

	TierPath    string
	IsBinary    bool
	Top         bool
	OH          bool
	OHCE        bool
	Partition   bool

	CounterexamplesFile string
	DebugOutput         bool
}

// parseArgs parses argv (os.Args[1:]) into a cliArgs, separating the
// "--flag [value]" forms from the positional argument run the way the
// teacher's own CLIs avoid a flag-parsing dependency: by scanning once
// and peeling recognized flags off wherever they appear.
func parseArgs(argv []string) (cliArgs, error) {
	var positional []string
	var a cliArgs

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--counterexamples-file":
			if i+1 >= len(argv) {
				return cliArgs{}, fmt.Errorf("--counterexamples-file: missing value: %w", svmverify.ErrUsage)
			}
			a.CounterexamplesFile = argv[i+1]
			i++
		case "--debug-output":
			a.DebugOutput = true
		default:
			positional = append(positional, argv[i])
		}
	}

	if len(positional) < 2 {
		return cliArgs{}, fmt.Errorf("usage: svmverify <svm_path> <dataset_csv> [abstraction] [perturbation] [perturbation_args...] [tier_path] [is_binary] [top] [oh] [oh_ce] [partition]: %w", svmverify.ErrUsage)
	}

	a.SVMPath = positional[0]
	a.DatasetPath = positional[1]
	rest := positional[2:]

	a.Abstraction = domain.Interval
	if len(rest) > 0 {
		kind, err := parseAbstraction(rest[0])
		if err != nil {
			return cliArgs{}, err
		}
		a.Abstraction = kind
		rest = rest[1:]
	}

	a.Perturbation = perturbLInf
	if len(rest) > 0 {
		kind, err := parsePerturbationKind(rest[0])
		if err != nil {
			return cliArgs{}, err
		}
		a.Perturbation = kind
		rest = rest[1:]
	}

	nArgs, err := perturbationArgCount(a.Perturbation)
	if err != nil {
		return cliArgs{}, err
	}
	if len(rest) < nArgs {
		return cliArgs{}, fmt.Errorf("perturbation %q needs %d argument(s), got %d: %w", a.Perturbation, nArgs, len(rest), svmverify.ErrUsage)
	}
	a.PerturbationArgs = rest[:nArgs]
	rest = rest[nArgs:]

	tail := []string{"", "0", "0", "0", "0", "0"}
	copy(tail, rest)
	if len(rest) > len(tail) {
		return cliArgs{}, fmt.Errorf("too many trailing arguments: %w", svmverify.ErrUsage)
	}

	a.TierPath = tail[0]
	if a.IsBinary, err = parseBoolFlag("is_binary", tail[1]); err != nil {
		return cliArgs{}, err
	}
	if a.Top, err = parseBoolFlag("top", tail[2]); err != nil {
		return cliArgs{}, err
	}
	if a.OH, err = parseBoolFlag("oh", tail[3]); err != nil {
		return cliArgs{}, err
	}
	if a.OHCE, err = parseBoolFlag("oh_ce", tail[4]); err != nil {
		return cliArgs{}, err
	}
	if a.Partition, err = parseBoolFlag("partition", tail[5]); err != nil {
		return cliArgs{}, err
	}

	if a.OH {
		switch a.Abstraction {
		case domain.Interval:
			a.Abstraction = domain.OHInterval
		case domain.RAF:
			a.Abstraction = domain.OHRAF
		default:
			return cliArgs{}, fmt.Errorf("oh=1 is only supported with abstraction interval or raf, got %s: %w", a.Abstraction, svmverify.ErrUsage)
		}
	}

	return a, nil
}

func parseAbstraction(s string) (domain.Kind, error) {
	switch s {
	case "interval":
		return domain.Interval, nil
	case "raf":
		return domain.RAF, nil
	case "hybrid":
		return domain.Hybrid, nil
	default:
		return 0, fmt.Errorf("unknown abstraction %q: %w", s, svmverify.ErrUsage)
	}
}

func parsePerturbationKind(s string) (perturbationKind, error) {
	switch perturbationKind(s) {
	case perturbL1, perturbLInf, perturbFrame, perturbClippedRect, perturbFromFile:
		return perturbationKind(s), nil
	default:
		return "", fmt.Errorf("unknown perturbation %q: %w", s, svmverify.ErrUsage)
	}
}

func perturbationArgCount(k perturbationKind) (int, error) {
	switch k {
	case perturbL1, perturbLInf:
		return 1, nil // epsilon
	case perturbFrame:
		return 4, nil // image_w image_h frame_w frame_h
	case perturbClippedRect:
		return 3, nil // epsilon clip_min clip_max
	case perturbFromFile:
		return 1, nil // perturbation file path
	default:
		return 0, fmt.Errorf("unknown perturbation %q: %w", k, svmverify.ErrUsage)
	}
}

func parseBoolFlag(name, s string) (bool, error) {
	switch s {
	case "0", "":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%s: expected 0 or 1, got %q: %w", name, s, svmverify.ErrUsage)
	}
}

func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number: %w", name, s, svmverify.ErrUsage)
	}
	return v, nil
}

func parseIntArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer: %w", name, s, svmverify.ErrUsage)
	}
	return v, nil
}
