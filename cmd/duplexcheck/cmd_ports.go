package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikepitagno/cisco-duplex-check/pkg/cli"
	"github.com/mikepitagno/cisco-duplex-check/pkg/inspect"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List every interface on a single device",
	Long: `List every interface on one switch with its live operational and
duplex state, including the down and unknown-duplex ports the report
excludes.

Examples:
  duplexcheck ports -c public -d sw-access-01
  duplexcheck ports -c public -d sw-access-01 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if communityFlag == "" {
			return fmt.Errorf("%w: SNMP community required (-c, DUPLEXCHECK_COMMUNITY, or settings)", errConfig)
		}
		if deviceFlag == "" {
			return fmt.Errorf("%w: ports requires a target device (-d)", errConfig)
		}

		rows, err := newInspector().Inventory(deviceFlag)
		if err != nil {
			return err
		}

		if jsonFlag {
			return json.NewEncoder(os.Stdout).Encode(rows)
		}

		t := cli.NewTable("PORT", "DESCRIPTION", "STATUS", "DUPLEX")
		for _, r := range rows {
			t.Row(r.Name, r.Alias, formatOper(r.Oper), formatDuplex(r))
		}
		t.Flush()
		return nil
	},
}

func formatOper(s inspect.OperStatus) string {
	if s == inspect.OperUp {
		return cli.Green("up")
	}
	return cli.Dim(s.String())
}

func formatDuplex(r inspect.PortStatus) string {
	if r.Oper != inspect.OperUp {
		return cli.Dim("-")
	}
	switch r.Duplex {
	case inspect.DuplexHalf:
		return cli.Red("half")
	case inspect.DuplexFull:
		return cli.Green("full")
	}
	return cli.Yellow("unknown")
}
