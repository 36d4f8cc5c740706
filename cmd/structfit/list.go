package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cwbudde/structfit/store"
)

var listStoreDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs",
	RunE:  listRuns,
}

func init() {
	listCmd.Flags().StringVar(&listStoreDir, "store", "./data", "Run store base directory")
	rootCmd.AddCommand(listCmd)
}

func listRuns(cmd *cobra.Command, args []string) error {
	runStore, err := store.NewFSStore(listStoreDir)
	if err != nil {
		return err
	}

	infos, err := runStore.ListRuns()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no runs")
		return nil
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})

	fmt.Printf("%-36s  %-20s  %4s  %12s  %s\n", "ID", "CREATED", "DIM", "BEST COST", "SOURCE")
	for _, info := range infos {
		fmt.Printf("%-36s  %-20s  %4d  %12.6g  %s\n",
			info.ID,
			info.CreatedAt.Format("2006-01-02 15:04:05"),
			info.Dim,
			info.BestCost,
			info.Source)
	}
	return nil
}
