package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	player         string
	date           string
	rating         int
	gameType       string
	tournamentName string
	result         string
	fromDate       string
	toDate         string
	rangeKind      string
	policy         string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(tournamentCmd)
	rootCmd.AddCommand(deleteTournamentCmd)
	rootCmd.AddCommand(ratingsCmd)
	rootCmd.AddCommand(tournamentsCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(migrateTypesCmd)

	rateCmd.Flags().StringVar(&player, "player", "", "Player name")
	rateCmd.Flags().StringVar(&date, "date", "", "Date of the session (YYYY-MM-DD)")
	rateCmd.Flags().IntVar(&rating, "rating", 0, "Self rating from 1 to 5")
	rateCmd.Flags().StringVar(&gameType, "type", "Practice", "Practice, Friendly Game or Tournament Game")

	tournamentCmd.Flags().StringVar(&player, "player", "", "Player name")
	tournamentCmd.Flags().StringVar(&tournamentName, "name", "", "Tournament name")
	tournamentCmd.Flags().StringVar(&date, "date", "", "Date of the tournament (YYYY-MM-DD)")
	tournamentCmd.Flags().StringVar(&result, "result", "", "Stage reached, omitted for upcoming tournaments")

	for _, cmd := range []*cobra.Command{ratingsCmd, tournamentsCmd} {
		cmd.Flags().StringVar(&player, "player", "", "Player name")
		cmd.Flags().StringVar(&fromDate, "from", "", "First date to include (YYYY-MM-DD)")
		cmd.Flags().StringVar(&toDate, "to", "", "Last date to include (YYYY-MM-DD)")
		cmd.Flags().StringVar(&rangeKind, "range", "", "week, month or year; overrides --from and --to")
	}
	ratingsCmd.Flags().StringVar(&policy, "policy", "", "minmaxavg or roundedScore, defaults to the server setting")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players on the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players", nil)
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player [name]",
	Short: "Add a player to the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/players", map[string]string{"name": args[0]})
	},
}

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Record a self rating, replacing any rating for the same player and date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/ratings", map[string]any{
			"player": player,
			"date":   date,
			"rating": rating,
			"type":   gameType,
		})
	},
}

var tournamentCmd = &cobra.Command{
	Use:   "tournament",
	Short: "Record a tournament result or schedule an upcoming tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/tournaments", map[string]string{
			"player":         player,
			"tournamentName": tournamentName,
			"date":           date,
			"result":         result,
		})
	},
}

var deleteTournamentCmd = &cobra.Command{
	Use:   "delete-tournament [id]",
	Short: "Delete an upcoming tournament by the id shown in tournaments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/tournaments/"+url.PathEscape(args[0]), nil)
	},
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Show a player's ratings and their summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := viewQuery()
		if policy != "" {
			q.Set("policy", policy)
		}
		return performRequest(http.MethodGet, "/ratings?"+q.Encode(), nil)
	},
}

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "Show a player's tournament results and upcoming tournaments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/tournaments?"+viewQuery().Encode(), nil)
	},
}

var rangeCmd = &cobra.Command{
	Use:       "range [week|month|year]",
	Short:     "Show the date window of a range shortcut",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"week", "month", "year"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/ranges/"+args[0], nil)
	},
}

var shareCmd = &cobra.Command{
	Use:   "share [player]",
	Short: "Print the link that opens the views on a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/share?"+url.Values{"player": {args[0]}}.Encode(), nil)
	},
}

var migrateTypesCmd = &cobra.Command{
	Use:   "migrate-types",
	Short: "Set the Practice type on ratings stored without one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/migrate/rating-types", nil)
	},
}

func viewQuery() url.Values {
	q := url.Values{}
	q.Set("player", player)
	if fromDate != "" {
		q.Set("from", fromDate)
	}
	if toDate != "" {
		q.Set("to", toDate)
	}
	if rangeKind != "" {
		q.Set("range", rangeKind)
	}
	return q
}

func performRequest(method, endpoint string, payload any) error {
	target := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, target)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	if resp.StatusCode >= http.StatusBadRequest {
		return &statusError{Method: method, Target: target, Code: resp.StatusCode}
	}
	return nil
}
