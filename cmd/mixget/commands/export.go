package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"mixget/internal/domain"
	"mixget/internal/services/export"
)

// export: run one export pass and download the results.
func exportCmd() *cobra.Command {
	var (
		mode        string
		query       string
		output      string
		manifest    string
		maxPolls    int
		fps         string
		skin        bool
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export animations for the primary character and download them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appCtx.Config
			flags := cmd.Flags()
			if flags.Changed("output") {
				cfg.OutputPath = output
			}
			if flags.Changed("manifest") {
				cfg.ManifestPath = manifest
			}
			if flags.Changed("max-polls") {
				cfg.MaxPolls = maxPolls
			}

			ec := cfg.ExportConfig()
			ec.Preferences.FPS = fps
			ec.Preferences.Skin = lo.ToPtr(skin)

			w := appCtx.Exporter(ec)
			req := export.Request{OutputPath: cfg.OutputPath, Mode: domain.ExportMode(mode), Query: query}
			if err := w.Configure(req); err != nil {
				return err
			}

			ctx, stop := context.WithCancel(cmd.Context())
			defer stop()
			go interruptHandler(ctx, w, stop)

			var total int
			err := w.Run(ctx, export.ObserverFuncs{
				OnTotal:     func(n int) { total = n },
				OnCompleted: func(i int) { fmt.Printf("[%d/%d] done\n", i, total) },
			})

			if metricsFile != "" {
				if werr := appCtx.Metrics.WriteTextfile(metricsFile); werr != nil {
					fmt.Fprintf(os.Stderr, "write metrics: %v\n", werr)
				}
			}
			if export.IsCancelled(err) {
				fmt.Println("cancelled")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("exported %d animation(s)\n", total)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&mode, "mode", string(domain.ModeAll), "what to export: tpose, all or query")
	f.StringVar(&query, "query", "", "search text for --mode query")
	f.StringVarP(&output, "output", "o", "", "download directory (env MIXGET_OUTPUT)")
	f.StringVar(&manifest, "manifest", "", "id→description JSON for --mode all (env MIXGET_MANIFEST)")
	f.IntVar(&maxPolls, "max-polls", export.DefaultMaxPolls, "monitor polls per job, 0 for no limit (env MIXGET_MAX_POLLS)")
	f.StringVar(&fps, "fps", "30", "export frame rate")
	f.BoolVar(&skin, "skin", false, "include the character mesh in animation exports")
	f.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run")
	return cmd
}

// interruptHandler cancels cooperatively on the first signal and aborts the
// in-flight request on the second.
func interruptHandler(ctx context.Context, w *export.Worker, abort context.CancelFunc) {
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	var n int
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigs:
			n++
			if n == 1 {
				fmt.Fprintln(os.Stderr, "stopping after the current animation (interrupt again to abort)")
				w.Cancel()
				continue
			}
			abort()
			return
		}
	}
}
