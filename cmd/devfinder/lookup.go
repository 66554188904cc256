package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/profile"
	"github.com/alexisbeaulieu97/devfinder/internal/tui"
)

type lookupOptions struct {
	Query   string
	UseSeed bool
	JSON    bool
}

type lookupOutput struct {
	Query   string       `json:"query"`
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	Card    profile.Card `json:"card"`
}

func newLookupCmd(root *rootFlags) *cobra.Command {
	opts := lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup <username>",
		Short: "Look up a single GitHub profile and print it",
		Long: `Lookup fetches one GitHub profile and prints its card. Missing profile
fields are shown with their placeholder values. Returns a non-zero exit code
when the lookup fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Query = args[0]
			return runLookup(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the result in JSON format")

	return cmd
}

func runLookup(cmd *cobra.Command, root *rootFlags, opts lookupOptions) error {
	app, err := newAppContext(cmd, root, false)
	if err != nil {
		return err
	}
	defer app.Close()

	query := opts.Query
	if opts.UseSeed {
		query = app.Seed
	}

	controller := app.NewController()
	ticket := controller.Begin(query)
	state := controller.Run(cmd.Context(), ticket)

	out := cmd.OutOrStdout()
	if opts.JSON {
		err = printLookupJSON(out, state)
	} else {
		err = printLookupCard(out, state, app)
	}
	if err != nil {
		return err
	}

	if state.Failed() {
		return newCommandError("look up profile", fmt.Sprintf("%q", ticket.Query), state.Err, "Check the username and try again.")
	}
	return nil
}

func resultCard(state lookup.State) profile.Card {
	if state.Status == lookup.StatusSuccess {
		return profile.NewCard(state.Profile)
	}
	return profile.NewCard(nil)
}

func printLookupCard(out io.Writer, state lookup.State, app *AppContext) error {
	if state.Failed() {
		if _, err := fmt.Fprintln(out, lookup.FailureMessage); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, tui.RenderCard(resultCard(state), app.Themes.Current(), 0))
	return err
}

func printLookupJSON(out io.Writer, state lookup.State) error {
	result := lookupOutput{
		Query:  state.Query,
		Status: state.Status.String(),
		Card:   resultCard(state),
	}
	if state.Failed() {
		result.Message = lookup.FailureMessage
		if state.Err != nil {
			result.Error = state.Err.Error()
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
