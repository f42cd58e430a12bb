// Command dppform drives the passport form engine from the command line:
// seed default values for a template, validate a data snapshot, diff two
// snapshots into patch operations, or fill a form interactively. Results
// are JSON on stdout; diagnostics go to stderr.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	dppform "github.com/hadijannat/mini-dpp-platform-sub000"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/validation"
)

func main() {
	var (
		bundleFlag   = flag.String("bundle", "", "Path to a template bundle directory (definition.json, uischema.json, hints.json)")
		dataFlag     = flag.String("data", "", "Path to the data snapshot to validate, diff, or prefill from")
		baselineFlag = flag.String("baseline", "", "Path to the pre-edit baseline snapshot (diff mode)")
		modeFlag     = flag.String("mode", "validate", "One of: seed, validate, diff, fill")
	)
	flag.Parse()

	if *bundleFlag == "" {
		log.Fatal("dppform: -bundle is required")
	}

	bundle, err := dppform.LoadBundle(os.DirFS(*bundleFlag))
	if err != nil {
		log.Fatalf("load bundle: %v", err)
	}

	switch *modeFlag {
	case "seed":
		emit(dppform.SeedDefaults(bundle.Schema))
	case "validate":
		runValidate(bundle, *dataFlag)
	case "diff":
		runDiff(bundle, *baselineFlag, *dataFlag)
	case "fill":
		runFill(bundle, *dataFlag)
	default:
		log.Fatalf("unknown mode %q (want seed, validate, diff, or fill)", *modeFlag)
	}
}

type validationReport struct {
	Valid    bool              `json:"valid"`
	Fields   map[string]string `json:"fields,omitempty"`
	EitherOr []string          `json:"eitherOr,omitempty"`
}

func runValidate(bundle *dppform.Bundle, dataPath string) {
	data := readSnapshot(dataPath)
	fields, groups := dppform.ValidateSnapshot(bundle.Definition, bundle.Schema, data)
	emit(validationReport{
		Valid:    len(fields) == 0 && len(groups) == 0,
		Fields:   fields,
		EitherOr: groups,
	})
}

func runDiff(bundle *dppform.Bundle, baselinePath, dataPath string) {
	if baselinePath == "" {
		log.Fatal("dppform: -baseline is required in diff mode")
	}
	baseline := readSnapshot(baselinePath)
	next := readSnapshot(dataPath)

	if bundle.Schema != nil {
		if messages := validation.ValidateReadOnly(bundle.Schema, next, baseline); len(messages) > 0 {
			emitError(messages)
		}
	}
	ops := dppform.Diff(bundle.Definition, baseline, next)
	if ops == nil {
		ops = []dppform.Operation{}
	}
	emit(ops)
}

func runFill(bundle *dppform.Bundle, dataPath string) {
	seeded := any(dppform.SeedDefaults(bundle.Schema))
	if dataPath != "" {
		seeded = readSnapshot(dataPath)
	}
	filled, err := fillInteractively(bundle, seeded)
	if err != nil {
		log.Fatalf("interactive fill: %v", err)
	}

	fields, groups := dppform.ValidateSnapshot(bundle.Definition, bundle.Schema, filled)
	if len(fields) > 0 || len(groups) > 0 {
		report, _ := json.MarshalIndent(validationReport{Fields: fields, EitherOr: groups}, "", "  ")
		fmt.Fprintln(os.Stderr, string(report))
	}
	emit(filled)
}

func readSnapshot(path string) any {
	if path == "" {
		log.Fatal("dppform: -data is required in this mode")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read snapshot: %v", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("parse snapshot %s: %v", path, err)
	}
	return data
}

func emit(payload any) {
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}
	fmt.Println(string(encoded))
}

func emitError(payload any) {
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}
	fmt.Fprintln(os.Stderr, string(encoded))
	os.Exit(1)
}
