package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
	"weather-dashboard/normalize"
)

func main() {
	fmt.Println("Forecast Payload Inspector")
	fmt.Println("==========================")

	baseURL := flag.String("url", datasource.DefaultOpenMeteoURL, "Forecast endpoint")
	lat := flag.Float64("lat", 52.52, "Latitude")
	lon := flag.Float64("lon", 13.41, "Longitude")
	tz := flag.String("tz", models.AutoTimezone, "IANA time zone or \"auto\"")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	ctx = models.WithRequestID(ctx, "payload-inspect")

	coords := models.Coordinates{Latitude: *lat, Longitude: *lon, TimeZone: *tz}
	client := datasource.NewBaseClient(nil, "payload-inspect", "weather-dashboard-inspect/1.0")
	provider := datasource.NewOpenMeteoProvider(*baseURL, client, nil)

	fmt.Printf("\nFetching forecast for %s from %s...\n", coords, provider.Name())
	payload, err := provider.FetchForecast(ctx, coords)
	if err != nil {
		fmt.Printf("Error fetching forecast: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nRaw payload (%d days, %d hours):\n", len(payload.Daily.Time), len(payload.Hourly.Time))
	printJSON(payload)

	fmt.Println("\nNormalized dashboard:")
	printJSON(normalize.Dashboard(payload))
}

func printJSON(v any) {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(prettyJSON))
}
