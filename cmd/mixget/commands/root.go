package commands

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"mixget/internal/app"
)

var (
	envFile string
	baseURL string
	apiKey  string
	token   string
	appCtx  *app.App
)

func Execute() error {
	return execute(os.Args[1:], nil)
}

// execute runs the CLI with args. A nil hc selects http.DefaultClient.
func execute(args []string, hc *http.Client) error {
	root := &cobra.Command{
		Use:          "mixget",
		Short:        "Bulk export animations from a Mixamo-style service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if flags.Changed("api-key") {
				cfg.APIKey = apiKey
			}
			if flags.Changed("token") {
				cfg.Token = token
			}
			cfg.HTTP = hc
			appCtx, err = app.New(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default .env if present)")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "API root (env MIXGET_BASE_URL)")
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "X-Api-Key header value (env MIXGET_API_KEY)")
	root.PersistentFlags().StringVar(&token, "token", "", "bearer token of a signed-in session (env MIXGET_TOKEN)")

	root.AddCommand(exportCmd(), characterCmd(), searchCmd())

	// Close on every path; cobra skips post-run hooks when RunE fails.
	defer func() {
		if appCtx != nil {
			appCtx.Close()
		}
	}()
	root.SetArgs(args)
	return root.Execute()
}
