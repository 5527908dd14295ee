package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/veilscan/veilscan/internal/application/dto"
	domainsvc "github.com/veilscan/veilscan/internal/domain/service"
)

var (
	assessInput  string
	assessPretty bool
	assessAt     string
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Evaluate an evidence file and print the risk report",
	Long: `Reads a JSON evidence document (breaches, social_exposures,
behavior_signals), runs the risk engine locally and prints the report.
Use --at to pin the evaluation clock for reproducible output.`,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().StringVarP(&assessInput, "input", "i", "", "path to the evidence JSON file (required)")
	assessCmd.Flags().BoolVar(&assessPretty, "pretty", false, "indent the JSON output")
	assessCmd.Flags().StringVar(&assessAt, "at", "", "evaluation instant as RFC3339 (default: now)")
	_ = assessCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(assessInput)
	if err != nil {
		return fmt.Errorf("read evidence file: %w", err)
	}

	var req dto.AssessmentRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parse evidence file: %w", err)
	}

	now := time.Now()
	if assessAt != "" {
		now, err = time.Parse(time.RFC3339, assessAt)
		if err != nil {
			return fmt.Errorf("parse --at instant: %w", err)
		}
	}

	bundle, fallbacks := req.Normalize()
	for _, fb := range fallbacks {
		fmt.Fprintf(os.Stderr, "warning: %s %q replaced by fallback\n", fb.Field, fb.Value)
	}

	engine := domainsvc.NewEngine(domainsvc.DefaultWeights())
	report, err := engine.Evaluate(bundle, now)
	if err != nil {
		return err
	}
	report.ID = uuid.NewString()

	out := json.NewEncoder(cmd.OutOrStdout())
	if assessPretty {
		out.SetIndent("", "  ")
	}
	return out.Encode(report)
}
