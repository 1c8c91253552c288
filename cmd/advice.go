package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usagi/eigoz/internal/stats"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Show today's coaching tip",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cur := stats.NewStore(st.Ledger()).Current()
		fmt.Println(stats.Advice(cur))
		return nil
	},
}
