// Command crosslight-sim runs a crosslight controller over a scripted
// stimulus sequence, logs output transitions as they happen and writes
// the transition trace to a CSV file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"crosslight"
	"crosslight/sim"
)

// fileConfig is the on-disk shape of a simulation run
type fileConfig struct {
	Controller struct {
		PrescaleMax int `json:"prescaleMax"`
		Durations   struct {
			NSGreen        int `json:"nsGreen"`
			NSYellow       int `json:"nsYellow"`
			EWGreen        int `json:"ewGreen"`
			EWYellow       int `json:"ewYellow"`
			PedWalk        int `json:"pedWalk"`
			AllRed         int `json:"allRed"`
			EmergencyGreen int `json:"emergencyGreen"`
		} `json:"durations"`
	} `json:"controller"`

	Scenario []struct {
		Reset            bool `json:"reset"`
		PedestrianButton bool `json:"pedestrianButton"`
		Emergency        bool `json:"emergency"`
		EmergencyClear   bool `json:"emergencyClear"`
		Units            int  `json:"units"`
	} `json:"scenario"`
}

func loadConfig(path string) (crosslight.Config, sim.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return crosslight.Config{}, nil, fmt.Errorf("failed to read config: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return crosslight.Config{}, nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := crosslight.Config{
		PrescaleMax: fc.Controller.PrescaleMax,
		Durations: crosslight.Durations{
			NSGreen:        fc.Controller.Durations.NSGreen,
			NSYellow:       fc.Controller.Durations.NSYellow,
			EWGreen:        fc.Controller.Durations.EWGreen,
			EWYellow:       fc.Controller.Durations.EWYellow,
			PedWalk:        fc.Controller.Durations.PedWalk,
			AllRed:         fc.Controller.Durations.AllRed,
			EmergencyGreen: fc.Controller.Durations.EmergencyGreen,
		},
	}

	script := make(sim.Script, 0, len(fc.Scenario))
	for _, seg := range fc.Scenario {
		script = append(script, sim.Segment{
			Reset: seg.Reset,
			Inputs: crosslight.Inputs{
				PedestrianButton: seg.PedestrianButton,
				Emergency:        seg.Emergency,
				EmergencyClear:   seg.EmergencyClear,
			},
			Units: seg.Units,
		})
	}

	return cfg, script, nil
}

func main() {
	configPath := flag.String("config", "", "JSON run configuration (default: reference scenario)")
	outPath := flag.String("out", "", "CSV trace output path")
	verbose := flag.Bool("v", false, "debug logging (per-tick)")
	flag.Parse()

	cfg := crosslight.DefaultConfig()
	script := sim.ReferenceScript()
	if *configPath != "" {
		var err error
		cfg, script, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	ctrl, err := crosslight.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := crosslight.LogInfo
	if *verbose {
		level = crosslight.LogDebug
	}
	ctrl.AddObserver(crosslight.NewLoggingObserver(level, "crosslight"))

	metrics := crosslight.NewMetricsObserver()
	ctrl.AddObserver(metrics)

	trace := sim.NewDriver(ctrl).Run(script)
	summary := sim.Summarize(trace)

	fmt.Printf("\nrun %s: %d cycles, %d ticks, %d transitions, %d preemptions\n",
		trace.RunID, trace.Cycles, trace.Ticks, len(trace.Events), metrics.GetPreemptionCount())

	phases := make([]crosslight.Phase, 0, len(summary.PerPhase))
	for phase := range summary.PerPhase {
		phases = append(phases, phase)
	}
	sort.Slice(phases, func(i, j int) bool { return phases[i] < phases[j] })
	for _, phase := range phases {
		st := summary.PerPhase[phase]
		fmt.Printf("  %-12s entries=%-3d mean=%.1f ticks stddev=%.2f\n",
			phase, st.Entries, st.MeanTicks, st.StdDevTicks)
	}

	outputs := []string{"ns_green", "ns_yellow", "ew_green", "ew_yellow", "ped_walk"}
	for _, name := range outputs {
		fmt.Printf("  duty %-10s %.1f%%\n", name, summary.DutyCycle[name]*100)
	}

	if *outPath != "" {
		if err := sim.WriteCSV(trace, *outPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("trace written to %s\n", *outPath)
	}
}
