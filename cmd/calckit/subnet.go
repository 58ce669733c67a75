// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/calckit/internal/subnet"
)

var subnetCmd = &cobra.Command{
	Use:   "subnet <address> [mask]",
	Short: "IPv4 subnet calculator",
	Long: `Subnet computes the network, broadcast, host range, and host counts for
an IPv4 address. The mask may be dotted (255.255.255.0) or a prefix length
(/24 or 24), or it can be omitted when the address carries a prefix:

  calckit subnet 192.168.1.10 255.255.255.0
  calckit subnet 10.20.30.40/12`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mask := ""
		if len(args) == 2 {
			mask = args[1]
		}
		res, err := subnet.Calculate(args[0], mask)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), res); ok {
			return err
		}
		private := "no"
		if res.Private {
			private = "yes"
		}
		fmt.Fprintf(w, "Address:      %s\n", res.Address)
		fmt.Fprintf(w, "Netmask:      %s (/%d)\n", res.Netmask, res.Prefix)
		fmt.Fprintf(w, "Wildcard:     %s\n", res.Wildcard)
		fmt.Fprintf(w, "Binary mask:  %s\n", res.BinaryMask)
		fmt.Fprintf(w, "Network:      %s\n", res.CIDR)
		fmt.Fprintf(w, "Broadcast:    %s\n", res.Broadcast)
		fmt.Fprintf(w, "Host range:   %s - %s\n", res.FirstHost, res.LastHost)
		printer.Fprintf(w, "Hosts:        %d total, %d usable\n", res.TotalHosts, res.UsableHosts)
		fmt.Fprintf(w, "Class:        %s (private: %s)\n", res.Class, private)
		return nil
	},
}

func init() {
	addOutputFlag(subnetCmd)
	rootCmd.AddCommand(subnetCmd)
}
