package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/DOCTOR-ANR/NDN-microservices/internal/config"
	"github.com/DOCTOR-ANR/NDN-microservices/internal/cs"
	"github.com/DOCTOR-ANR/NDN-microservices/internal/server/mgmt"
)

var (
	// Server flags
	port     int
	bindAddr string
	capacity int
)

// serverCmd represents the server command (default action)
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the content store daemon",
	Long: `Start csd, serving the HTTP management API over the in-memory
content store until interrupted. Flags override the configuration file.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// Set server as the default command
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runServer(cmd, args)
	}

	serverCmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	serverCmd.Flags().StringVar(&bindAddr, "bind", "", "address to bind to (overrides config)")
	serverCmd.Flags().IntVar(&capacity, "capacity", 0, "content store capacity (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if bindAddr != "" {
		cfg.Server.Bind = bindAddr
	}
	if capacity != 0 {
		cfg.Store.Capacity = capacity
	}

	store, err := cs.NewStore(cfg.Store.Capacity)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Server.ListenAddr(),
		Handler: mgmt.NewHandler(store),
	}

	if !quiet {
		fmt.Printf("csd listening on %s (capacity %d packets)\n", cfg.Server.ListenAddr(), cfg.Store.Capacity)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("server stopped with error: %v", err)
		return err
	}
	if !quiet {
		fmt.Println("csd stopped")
	}
	return nil
}
