package main

import (
	"strings"

	"github.com/spf13/cobra"

	"replkit/internal/core/domain"
	"replkit/internal/core/domain/dispatch"
	"replkit/internal/core/domain/match"
	"replkit/internal/core/port"
)

var saladCmd = &cobra.Command{
	Use:   "salad",
	Short: "Prebuilt-context console for ordering salads",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runConsole(newSaladContext())
	},
}

func init() {
	rootCmd.AddCommand(saladCmd)
}

var saladRegistry = dispatch.NewRegistry().
	BindRegex(`(?P<do_what>eat|cook) caesar`, func(ctx port.CommandContext, vals domain.Values) error {
		do := vals.String("do_what")
		ctx.Write(strings.ToUpper(do[:1]) + do[1:] + "ing caesar salad...\n")
		return nil
	}).
	BindArgs(match.NewArgGrammar("buy",
		[]match.Positional{{Name: "kind_of_salad", Required: true}},
		[]match.Flag{{Name: "price", Short: "p", Help: "how much to pay"}},
	), func(ctx port.CommandContext, vals domain.Values) error {
		msg := "Buying " + vals.String("kind_of_salad") + " salad"
		if price := vals.String("price"); price != "" {
			msg += " for " + price
		}
		ctx.Write(msg + "...\n")
		return nil
	})

func newSaladContext() *dispatch.Context {
	return dispatch.NewPrebuiltPrompt("salad", saladRegistry)
}
