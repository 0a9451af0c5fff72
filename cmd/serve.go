package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkurien/skillpath/internal/api"
	"github.com/mkurien/skillpath/internal/discover"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		discovery := discover.New(env.provider, env.logger)
		server := api.NewServer(env.provider, env.resolver, discovery, env.logger)

		httpServer := &http.Server{
			Addr:         addr,
			Handler:      server.Router(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 90 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		env.logger.Info("starting HTTP server", "addr", addr)
		fmt.Printf("Listening on %s\n", addr)
		return httpServer.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
