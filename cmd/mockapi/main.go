package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"mixget/internal/domain"
	"mixget/internal/fakeapi"
	"mixget/internal/remote"
)

func main() {
	var (
		addr      string
		apiKey    string
		charID    string
		charName  string
		polls     int
		failNames []string
	)
	cmd := &cobra.Command{
		Use:          "mockapi",
		Short:        "Serve an in-memory animation service for local runs",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fake := fakeapi.New(domain.Character{ID: domain.CharacterID(charID), Name: charName}, apiKey)
			fake.PollsUntilDone = polls
			for _, n := range failNames {
				fake.FailProducts[n] = true
			}
			fake.AddProduct(fakeapi.SampleProducts()...)

			r := chi.NewRouter()
			r.Use(middleware.Logger)
			r.Mount("/", fake.Handler())

			log.Printf("mockapi listening on %s (base URL http://localhost%s/api/v1/)", addr, addr)
			return http.ListenAndServe(addr, r)
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr, "addr", ":8090", "listen address")
	f.StringVar(&apiKey, "api-key", remote.DefaultAPIKey, "required X-Api-Key value, empty to accept any")
	f.StringVar(&charID, "character-id", "c0ffee00-0000-4000-8000-000000000001", "primary character id, empty for none")
	f.StringVar(&charName, "character-name", "Y Bot", "primary character name")
	f.IntVar(&polls, "polls", 2, "processing polls before a job completes")
	f.StringSliceVar(&failNames, "fail", nil, "product names whose exports fail")

	if err := cmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
