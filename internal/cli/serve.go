package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long:  "Serve solver sessions over HTTP. Sessions live in memory and are lost on restart.",
		Run:   runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default: server.addr from config)")
	addSolverFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	v := loadVocabulary(cmd.Context(), s)
	s.Close()

	srv, err := server.New(v, solverConfig(cmd), server.Options{
		RequestTimeout: cfg.Server.RequestTimeout,
		Sessions:       server.NewMemoryStore(cfg.Server.MaxSessions),
		Logger:         logger,
	})
	if err != nil {
		exitErr("new server", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, addr, cfg.Server.ShutdownTimeout); err != nil {
		exitErr("serve", err)
	}
}
