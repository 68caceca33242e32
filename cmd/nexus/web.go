package main

import (
	"github.com/spf13/cobra"

	"github.com/jayadityagandham/Scholar-Nexus/bleve"
	"github.com/jayadityagandham/Scholar-Nexus/bolt"
	"github.com/jayadityagandham/Scholar-Nexus/http"
	"github.com/jayadityagandham/Scholar-Nexus/notify"
	"github.com/jayadityagandham/Scholar-Nexus/services"
)

func init() {
	RootCmd.AddCommand(&WebCmd)
}

var WebCmd = cobra.Command{
	Use:   "web",
	Short: "Start the web server",
	Long:  "Start the web server",
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

		var notifier notify.Notifier = &notify.InMemNotifier{}
		if config.Redis.Addr != "" {
			redisNotifier := notify.NewRedisNotifier(config.Redis.Addr, config.Redis.Channel, logger)
			defer redisNotifier.Close()
			notifier = redisNotifier
		}

		resourceService := services.NewResourceService(
			&bolt.ResourceRepository{Driver: driver},
			index,
			notifier,
			logger,
		)
		reservationService := services.NewReservationService(
			&bolt.BookRepository{Driver: driver},
			&bolt.ReservationRepository{Driver: driver},
			notifier,
		)

		srv := http.NewServer()
		http.RegisterResourceEndpoints(srv, resourceService)
		http.RegisterReservationEndpoints(srv, reservationService)

		logger.Print("server started, listening on", config.HTTP.Addr)
		if err := srv.Run(config.HTTP.Addr); err != nil {
			logger.Fatal("server stopped:", err)
		}
	},
}
