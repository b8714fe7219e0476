// Package report renders the user-facing configuration text: the usage
// banner and the run-configuration summary. It reads Config fields but makes
// no decisions of its own.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pradeep-ramanna/rccl-developer/internal/config"
)

// Usage writes the environment-variable reference to w.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "======================")
	fmt.Fprintln(w, " USE_HIP_CALL       - Use native copy/memset calls instead of custom shader kernels for GPU-executed copies")
	fmt.Fprintln(w, " USE_MEMSET         - Perform a memset instead of a copy (ignores source memory)")
	fmt.Fprintln(w, " USE_SINGLE_SYNC    - Perform synchronization only once after all iterations instead of per iteration")
	fmt.Fprintln(w, " USE_INTERACTIVE    - Pause for user-input before starting transfer loop")
	fmt.Fprintln(w, " USE_SLEEP          - Add a 100ms sleep after each synchronization")
	fmt.Fprintln(w, " COMBINE_TIMING     - Combines timing with launch (potentially lower timing overhead)")
	fmt.Fprintln(w, " SHOW_ADDR          - Print out memory addresses for each Link")
	fmt.Fprintln(w, " OUTPUT_TO_CSV      - Outputs to CSV format if set")
	fmt.Fprintln(w, " BYTE_OFFSET        - Initial byte-offset for memory allocations.  Must be multiple of 4. Defaults to 0")
	fmt.Fprintln(w, " NUM_WARMUPS=W      - Perform W untimed warmup iteration(s) per test")
	fmt.Fprintln(w, " NUM_ITERATIONS=I   - Perform I timed iteration(s) per test")
	fmt.Fprintln(w, " SAMPLING_FACTOR=F  - Add F samples (when possible) between powers of 2 when auto-generating data sizes")
	fmt.Fprintln(w, " NUM_CPU_PER_LINK=C - Use C threads per Link for CPU-executed copies")
	fmt.Fprintln(w, " FILL_PATTERN=STR   - Fill input buffer with pattern specified in hex digits (0-9,a-f,A-F).  Must be even number of digits")
}

// Summary writes the run-configuration block to w. In CSV mode the console
// block is replaced by a two-column CSV rendition of the same settings.
func Summary(w io.Writer, cfg config.Config) error {
	if cfg.OutputToCSV != 0 {
		return summaryCSV(w, cfg)
	}
	summaryConsole(w, cfg)
	return nil
}

func summaryConsole(w io.Writer, cfg config.Config) {
	fmt.Fprintln(w, "Run configuration")
	fmt.Fprintln(w, "=====================================================")
	fmt.Fprintf(w, "%-20s = %12d : Using %s for GPU-executed copies\n", "USE_HIP_CALL", cfg.UseHipCall,
		pick(cfg.UseHipCall, "native copy calls", "custom kernels"))
	fmt.Fprintf(w, "%-20s = %12d : Performing %s\n", "USE_MEMSET", cfg.UseMemset,
		pick(cfg.UseMemset, "memset", "memcopy"))
	if cfg.UseHipCall != 0 && cfg.UseMemset == 0 {
		sdma := os.Getenv("HSA_ENABLE_SDMA")
		fmt.Fprintf(w, "%-20s = %12s : %s\n", "HSA_ENABLE_SDMA", sdma,
			pickStr(sdma == "0", "Using blit kernels for copies", "Using DMA copy engines"))
	}
	fmt.Fprintf(w, "%-20s = %12d : %s\n", "USE_SINGLE_SYNC", cfg.UseSingleSync,
		pick(cfg.UseSingleSync, "Synchronizing only once, after all iterations", "Synchronizing per iteration"))
	fmt.Fprintf(w, "%-20s = %12d : Running in %s mode\n", "USE_INTERACTIVE", cfg.UseInteractive,
		pick(cfg.UseInteractive, "interactive", "non-interactive"))
	fmt.Fprintf(w, "%-20s = %12d : %s\n", "USE_SLEEP", cfg.UseSleep,
		pick(cfg.UseSleep, "Sleeping 100ms after each synchronization", "Not sleeping after synchronization"))
	fmt.Fprintf(w, "%-20s = %12d : %s\n", "COMBINE_TIMING", cfg.CombineTiming,
		pick(cfg.CombineTiming, "Using combined timing+launch", "Using separate timing / launch"))
	fmt.Fprintf(w, "%-20s = %12d : %s\n", "SHOW_ADDR", cfg.ShowAddr,
		pick(cfg.ShowAddr, "Displaying src/dst mem addresses", "Not displaying src/dst mem addresses"))
	fmt.Fprintf(w, "%-20s = %12d : Output to %s\n", "OUTPUT_TO_CSV", cfg.OutputToCSV,
		pick(cfg.OutputToCSV, "CSV", "console"))
	fmt.Fprintf(w, "%-20s = %12d : Using byte offset of %d\n", "BYTE_OFFSET", cfg.ByteOffset, cfg.ByteOffset)
	fmt.Fprintf(w, "%-20s = %12d : Running %d warmup iteration(s) per topology\n", "NUM_WARMUPS", cfg.NumWarmups, cfg.NumWarmups)
	fmt.Fprintf(w, "%-20s = %12d : Running %d timed iteration(s) per topology\n", "NUM_ITERATIONS", cfg.NumIterations, cfg.NumIterations)
	fmt.Fprintf(w, "%-20s = %12d : Using %d CPU thread(s) per CPU-based-copy Link\n", "NUM_CPU_PER_LINK", cfg.NumCPUPerLink, cfg.NumCPUPerLink)
	fmt.Fprintf(w, "%-20s = %12s : %s\n", "FILL_PATTERN",
		pickStr(cfg.PatternSet(), "(specified)", "(unspecified)"), patternNote(cfg))
}

func summaryCSV(w io.Writer, cfg config.Config) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"variable", "value"},
		{"USE_HIP_CALL", strconv.Itoa(cfg.UseHipCall)},
		{"USE_MEMSET", strconv.Itoa(cfg.UseMemset)},
		{"USE_SINGLE_SYNC", strconv.Itoa(cfg.UseSingleSync)},
		{"USE_INTERACTIVE", strconv.Itoa(cfg.UseInteractive)},
		{"USE_SLEEP", strconv.Itoa(cfg.UseSleep)},
		{"COMBINE_TIMING", strconv.Itoa(cfg.CombineTiming)},
		{"SHOW_ADDR", strconv.Itoa(cfg.ShowAddr)},
		{"OUTPUT_TO_CSV", strconv.Itoa(cfg.OutputToCSV)},
		{"BYTE_OFFSET", strconv.Itoa(cfg.ByteOffset)},
		{"NUM_WARMUPS", strconv.Itoa(cfg.NumWarmups)},
		{"NUM_ITERATIONS", strconv.Itoa(cfg.NumIterations)},
		{"SAMPLING_FACTOR", strconv.Itoa(cfg.SamplingFactor)},
		{"NUM_CPU_PER_LINK", strconv.Itoa(cfg.NumCPUPerLink)},
		{"FILL_PATTERN", cfg.PatternText()},
	}
	return cw.WriteAll(rows)
}

func patternNote(cfg config.Config) string {
	if len(cfg.FillPattern) > 0 {
		return "Pattern: " + cfg.PatternText()
	}
	return "Pseudo-random: (Element i = i modulo 383 + 31)"
}

func pick(flag int, on, off string) string {
	if flag != 0 {
		return on
	}
	return off
}

func pickStr(cond bool, on, off string) string {
	if cond {
		return on
	}
	return off
}
