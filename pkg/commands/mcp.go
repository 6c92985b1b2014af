package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DIEGO120000/agenda-test01/pkg/runner/mcp"
	"github.com/DIEGO120000/agenda-test01/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport   string
		httpHost    string
		httpPort    int
		httpPath    string
		httpTLSCert string
		httpTLSKey  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes the planner state and mutations
through the Model Context Protocol.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			r := mcp.Runner{
				Persistence: p,
				Name:        "agenda",
				Version:     "dev",
				Transport:   mcp.Transport(strings.ToLower(transport)),
			}

			if r.Transport == mcp.TransportHTTP {
				r.HTTPListenAddr = net.JoinHostPort(httpHost, strconv.Itoa(httpPort))
				r.HTTPEndpointPath = httpPath
				r.HTTPServerCert = httpTLSCert
				r.HTTPServerKey = httpTLSKey
				r.OnHTTPListening = func(addr net.Addr) {
					fmt.Printf("mcp listening on %s%s\n", addr, httpPath)
				}
			}

			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio),
		"Transport to serve MCP over: stdio or http.")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1",
		"Host interface for the http transport.")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080,
		"Port for the http transport.")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp",
		"Endpoint path for the http transport.")
	cmd.Flags().StringVar(&httpTLSCert, "http-tls-cert", "",
		"TLS certificate file for the http transport.")
	cmd.Flags().StringVar(&httpTLSKey, "http-tls-key", "",
		"TLS key file for the http transport.")

	topLevel.AddCommand(cmd)
}
