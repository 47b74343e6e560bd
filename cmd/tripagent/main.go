package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/voyago/tripagent/config"
	srv "github.com/voyago/tripagent/internal/server"
	"github.com/voyago/tripagent/internal/trip"
	"github.com/voyago/tripagent/provider"
	"github.com/voyago/tripagent/tools/web_search"
)

func main() {
	var root = &cobra.Command{Use: "tripagent"}

	root.AddCommand(serveCMD(), planCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCMD() *cobra.Command {
	var cfgPath string
	var addr string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Address = addr
			}
			return srv.Run(cfg)
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	serve.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./tripagent.yaml)")
	return serve
}

func planCMD() *cobra.Command {
	var cfgPath string
	req := trip.Request{}
	var interests []string
	var style, tripType, ageGroup, accommodation string
	var plan = &cobra.Command{
		Use:   "plan",
		Short: "Generate one itinerary and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}

			searcher, err := web_search.NewWebSearcher(web_search.Provider(cfg.Search.Provider), cfg.Search.APIKey, cfg.Search.Timeout)
			if err != nil {
				return err
			}
			llm, err := provider.NewProvider(provider.Client(cfg.LLM.Provider), cfg.LLM.APIKey,
				cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.MaxTokens, cfg.LLM.Timeout)
			if err != nil {
				return err
			}

			req.Interests = interests
			req.TravelStyle = trip.TravelStyle(style)
			req.TripType = trip.TripType(tripType)
			req.AgeGroup = trip.AgeGroup(ageGroup)
			req.AccommodationType = trip.AccommodationType(accommodation)

			logger := log.New(os.Stderr, "[PIPELINE] ", log.LstdFlags)
			planner := trip.NewPlanner(searcher, llm, cfg.Search.MaxResults, logger, nil)
			st, err := planner.Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Println(st.FinalTrip)
			return nil
		},
	}
	plan.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./tripagent.yaml)")
	plan.Flags().StringVar(&req.Country, "country", "", "destination country")
	plan.Flags().StringSliceVar(&interests, "interests", nil, "interests, e.g. food,culture")
	plan.Flags().StringVar(&req.DepartureDate, "departure", "", "departure date (YYYY-MM-DD)")
	plan.Flags().StringVar(&req.ReturnDate, "return", "", "return date (YYYY-MM-DD)")
	plan.Flags().StringVar(&style, "style", "budget", "travel style: budget, luxury, adventure, relaxation")
	plan.Flags().StringVar(&tripType, "trip-type", "solo", "trip type: solo, friends, family")
	plan.Flags().StringVar(&ageGroup, "age-group", "adult", "age group: child, teen, adult, senior")
	plan.Flags().StringVar(&accommodation, "accommodation", "hotel", "accommodation: hotel, hostel, apartment, bnb, camping")
	_ = plan.MarkFlagRequired("country")
	_ = plan.MarkFlagRequired("departure")
	_ = plan.MarkFlagRequired("return")
	return plan
}
