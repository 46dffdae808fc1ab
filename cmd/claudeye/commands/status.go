package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

const statusTimeout = 5 * time.Second

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the queue status of a running claudeye daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url := statusURL(c.app.ListenAddr())

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			client := &http.Client{Timeout: statusTimeout}
			resp, err := client.Do(req)
			if err != nil {
				return zerr.Wrap(err, "daemon not reachable, is 'claudeye serve' running?")
			}
			defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return zerr.With(zerr.New("status request failed"), "status", resp.Status)
			}

			var pretty json.RawMessage = body
			out, err := json.MarshalIndent(pretty, "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

// statusURL turns a listen address like ":4777" into a reachable URL.
func statusURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/api/status"
}
