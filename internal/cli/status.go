package cli

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the connection to the server",
		Long:  "Prints the configured server and whether its health check answers.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			runStatus(cmd.OutOrStdout(), cfg.ServerURL)
			return nil
		},
	}
}

func runStatus(out io.Writer, serverURL string) {
	serverURL = strings.TrimRight(serverURL, "/")
	writef(out, "Server:  %s\n", serverURL)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(serverURL + "/health")
	if err != nil {
		writef(out, "Status:  ✗ cannot reach server (%v)\n", err)
		return
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	if resp.StatusCode == http.StatusOK {
		writef(out, "Status:  ✓ connected\n")
		return
	}
	writef(out, "Status:  ✗ unexpected response (%d)\n", resp.StatusCode)
}
