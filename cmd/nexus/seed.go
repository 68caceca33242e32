package main

import (
	"github.com/spf13/cobra"

	"github.com/jayadityagandham/Scholar-Nexus/bleve"
	"github.com/jayadityagandham/Scholar-Nexus/bolt"
	"github.com/jayadityagandham/Scholar-Nexus/seed"
)

func init() {
	RootCmd.AddCommand(&SeedCmd)
}

var SeedCmd = cobra.Command{
	Use:   "seed",
	Short: "Load the initial resources and books",
	Long:  "Load the initial resources and books into the store and the index",
	Run: func(cmd *cobra.Command, args []string) {
		driver := &bolt.Driver{}
		if err := driver.Open(config.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt:", err)
		}
		defer driver.Close()

		index := &bleve.ResourceIndex{}
		if err := index.Open(config.Bleve.Store); err != nil {
			logger.Fatal("could not open bleve:", err)
		}
		defer index.Close()

		resourceRepo := &bolt.ResourceRepository{Driver: driver}
		resources := seed.Resources()
		for i := range resources {
			if err := resourceRepo.Insert(&resources[i]); err != nil {
				logger.Fatal("could not insert resource:", err)
			}
			if err := index.Index(&resources[i]); err != nil {
				logger.Fatal("could not index resource:", err)
			}
			logger.Printf("<Resource %s> %s", resources[i].ID, resources[i].Title)
		}

		bookRepo := &bolt.BookRepository{Driver: driver}
		books := seed.Books()
		for i := range books {
			if err := bookRepo.Upsert(&books[i]); err != nil {
				logger.Fatal("could not insert book:", err)
			}
			logger.Printf("<Book %s> %s", books[i].ID, books[i].Title)
		}
	},
}
