package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent"
)

func renderAnswer(w io.Writer, ans advisor.Answer) {
	fmt.Fprintln(w, ans.Response)

	if len(ans.Dataset) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, color.HiBlackString("Sources"))
		for _, kind := range agent.ToolKinds() {
			outcome, ok := ans.Dataset[kind]
			if !ok {
				continue
			}
			if outcome.OK() {
				fmt.Fprintf(w, "  %s %s\n", color.GreenString("✓"), kind)
				continue
			}
			fmt.Fprintf(w, "  %s %s %s\n", color.RedString("✗"), kind, color.HiBlackString("(%s)", outcome.Reason))
		}
	}

	if ans.Error != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, color.RedString("error: %s", ans.Error))
	}
}

func renderData(w io.Writer, out advisor.FinancialDataOutput) error {
	fmt.Fprintln(w, color.CyanString("%s %s", out.Ticker, strings.ToUpper(out.DataType)))
	fmt.Fprintln(w, strings.Repeat("─", 40))

	b, err := json.MarshalIndent(out.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
