package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flthistle/thistle-cube/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Long: `serve loads the phase tables and exposes POST /api/solve and GET
/api/health over HTTP.`,
	RunE: runServe,
}

var (
	servePort string
	serveHost string
)

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "port to bind")
	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "localhost", "host to bind")
}

func runServe(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	addr := serveHost + ":" + servePort
	fmt.Printf("Starting web server at http://%s\n", addr)
	server := web.NewServer(tables)
	return server.Start(addr)
}
