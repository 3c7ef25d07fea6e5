package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mixget/internal/domain"
)

// character: print the session's primary character.
func characterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "character",
		Short: "Print the primary character id and name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := appCtx.API.PrimaryCharacter(cmd.Context())
			if err != nil {
				return err
			}
			if ch.ID == "" {
				return domain.ErrNoCharacter
			}
			fmt.Printf("%s\t%s\n", ch.ID, ch.Name)
			return nil
		},
	}
}
