package main

import (
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/frippe75/google-takeout-road-mapping/config"
	"github.com/frippe75/google-takeout-road-mapping/filter"
	"github.com/frippe75/google-takeout-road-mapping/geojson"
	"github.com/frippe75/google-takeout-road-mapping/internal"
	"github.com/frippe75/google-takeout-road-mapping/pipeline"
	"github.com/frippe75/google-takeout-road-mapping/snap"
	"github.com/frippe75/google-takeout-road-mapping/utils"
)

func main() {
	folderPath := flag.String("folder-path", "", "path to the Semantic Location History folder (required)")
	outputGeoJSON := flag.String("output-geojson", "", "output GeoJSON file (required)")
	activityTypes := flag.String("activity-types", "", "comma-separated activity type allow-list (e.g. IN_PASSENGER_VEHICLE,WALKING)")
	fromDate := flag.String("from-date", "", "start date (YYYY-MM-DD)")
	toDate := flag.String("to-date", "", "end date (YYYY-MM-DD)")
	centerLat := flag.Float64("center-lat", 0, "geofence center latitude")
	centerLon := flag.Float64("center-lon", 0, "geofence center longitude")
	radiusKM := flag.Float64("radius-km", 0, "geofence radius in kilometers")
	excludeCountries := flag.String("exclude-countries", "", "comma-separated countries to exclude (e.g. Sweden,USA)")
	strokeWidth := flag.Float64("stroke-width", 2.0, "stroke width for output features")
	strokeColor := flag.String("stroke-color", "#FF0000", "stroke color for output features (#RRGGBB)")
	flag.Parse()

	internal.InitLogging()
	_ = godotenv.Load()

	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *folderPath == "" || *outputGeoJSON == "" {
		flag.Usage()
		log.Fatal("both -folder-path and -output-geojson are required")
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	crit := filter.Criteria{
		ActivityTypes:    splitList(*activityTypes),
		ExcludeCountries: splitList(*excludeCountries),
	}
	if *fromDate != "" {
		t, err := utils.ParseCLIDate(*fromDate)
		if err != nil {
			log.Fatalf("invalid -from-date: %v", err)
		}
		crit.From = &t
	}
	if *toDate != "" {
		t, err := utils.ParseCLIDate(*toDate)
		if err != nil {
			log.Fatalf("invalid -to-date: %v", err)
		}
		crit.To = &t
	}
	if set["center-lat"] || set["center-lon"] || set["radius-km"] {
		if !set["center-lat"] || !set["center-lon"] || !set["radius-km"] {
			log.Fatal("-center-lat, -center-lon and -radius-km must be given together")
		}
		if *radiusKM <= 0 {
			log.Fatal("-radius-km must be positive")
		}
		crit.Geofence = &filter.Geofence{CenterLat: *centerLat, CenterLon: *centerLon, RadiusKM: *radiusKM}
	}

	style := geojson.Style{StrokeWidth: cfg.Style.StrokeWidth, StrokeColor: cfg.Style.StrokeColor}
	if set["stroke-width"] {
		style.StrokeWidth = *strokeWidth
	}
	if set["stroke-color"] {
		style.StrokeColor = *strokeColor
	}

	aliases := filter.DefaultCountryAliases().Merge(cfg.Countries)
	snapper := snap.NewClient(cfg.Routing)

	p := pipeline.New(crit, aliases, snapper, style, pipeline.LogEvents{})
	if err := p.Run(*folderPath, *outputGeoJSON); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
