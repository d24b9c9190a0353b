package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"replkit/internal/core/domain"
	"replkit/internal/core/domain/dispatch"
	"replkit/internal/core/domain/match"
	"replkit/internal/core/port"
)

var startrekCmd = &cobra.Command{
	Use:   "startrek",
	Short: "Argument-grammar console feeding a multi-line JSON capture",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runConsole(newStartrekContext())
	},
}

func init() {
	rootCmd.AddCommand(startrekCmd)
}

var startrekRegistry = dispatch.NewRegistry().
	BindArgs(match.NewArgGrammar("boldly_read", nil,
		[]match.Flag{{Name: "format", Short: "f", Default: "plain", Help: "input format"}},
	), func(ctx port.CommandContext, vals domain.Values) error {
		format := vals.String("format")
		if format != "json" {
			ctx.Write("Unbold format: " + format + "\n")
			return nil
		}

		ctx.Write("Boldly go on:\n")
		ctx.Enter(dispatch.NewJSONContext(func(data any) {
			encoded, err := json.Marshal(data)
			if err != nil {
				ctx.Write(err.Error() + "\n")
				return
			}
			ctx.Write("Boldly done!\nJSON is valid: " + string(encoded) + "\n")
		}, nil))
		return nil
	})

func newStartrekContext() *dispatch.Context {
	return dispatch.NewPrebuiltPrompt("", startrekRegistry)
}
