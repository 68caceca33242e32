package main

import (
	"github.com/spf13/cobra"

	"github.com/jayadityagandham/Scholar-Nexus/bleve"
	"github.com/jayadityagandham/Scholar-Nexus/bolt"
	"github.com/jayadityagandham/Scholar-Nexus/errors"
)

func init() {
	RootCmd.AddCommand(&IndexCmd)
}

var IndexCmd = cobra.Command{
	Use:   "index",
	Short: "Rebuild the suggestion index",
	Long:  "Rebuild the suggestion index from the resource store",
	RunE: func(cmd *cobra.Command, args []string) error {
		driver := &bolt.Driver{}
		if err := driver.Open(config.Bolt.Store); err != nil {
			return errors.New("error opening db", errors.WithCause(err))
		}
		defer driver.Close()

		index := &bleve.ResourceIndex{}
		if err := index.Open(config.Bleve.Store); err != nil {
			return errors.New("error opening index", errors.WithCause(err))
		}
		defer index.Close()

		repo := &bolt.ResourceRepository{Driver: driver}
		resources, err := repo.List()
		if err != nil {
			return errors.New("error listing resources", errors.WithCause(err))
		}

		for i := range resources {
			if err := index.Index(&resources[i]); err != nil {
				return errors.New("error indexing", errors.WithCause(err))
			}
			cmd.Printf("<Resource %s> indexed\n", resources[i].ID)
		}
		return nil
	},
}
