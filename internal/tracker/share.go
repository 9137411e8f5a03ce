package tracker

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mauv0809/padel-tracker/internal/padel"
)

// ShareURL builds the link that opens the views preselected on player.
// Any query already present on baseURL is replaced.
func ShareURL(baseURL, player string) (string, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return "", invalid("player", "Please select a player to share")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	u.RawQuery = url.Values{"player": []string{player}}.Encode()
	u.Fragment = ""
	return u.String(), nil
}

// ResolveSharedPlayer returns player when it is on the roster and the empty
// string otherwise.
func ResolveSharedPlayer(roster padel.Roster, player string) string {
	if player == "" || !roster.Contains(player) {
		return ""
	}
	return player
}
