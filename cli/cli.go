package cli

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"pfeifer.dev/dbwd/settings"
)

func Handle() {
	defaults := settings.VehicleSettings{}
	defaults.Default()
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Watch and send commands to an active dbwd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:    "engage",
				Aliases: []string{"e"},
				Usage:   "Enable or disable drive by wire on an active dbwd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return engage()
				},
			},
			{
				Name:    "publish-route",
				Aliases: []string{"p"},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Category: "Inputs",
						Name:     "file",
						Aliases: []string{
							"f",
						},
						Usage:    "Route file to publish (.csv, .osm or .osm.pbf)",
						Required: true,
					},
					&cli.Float64Flag{
						Category: "Speed",
						Name:     "speed",
						Usage:    "Cruise speed in m/s for waypoints without a speed",
						Value:    defaults.CruiseSpeed,
					},
					&cli.Float64Flag{
						Category: "Speed",
						Name:     "decel",
						Usage:    "Deceleration in m/s^2 used to come to rest at the end of the route, 0 to disable",
						Value:    defaults.MaxDecel,
					},
					&cli.BoolFlag{
						Category: "Speed",
						Name:     "loop",
						Usage:    "Treat the route as a closed track",
						Value:    false,
					},
					&cli.IntFlag{
						Category: "Publishing",
						Name:     "repeat",
						Usage:    "Number of times to publish the route",
						Value:    5,
					},
					&cli.DurationFlag{
						Category: "Publishing",
						Name:     "interval",
						Usage:    "Delay between repeated publishes",
						Value:    1 * time.Second,
					},
				},
				Usage: "Loads a route file and publishes it as base waypoints",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return publishRoute(ctx, routeOptions{
						File:     cmd.String("file"),
						Speed:    cmd.Float64("speed"),
						Decel:    cmd.Float64("decel"),
						Loop:     cmd.Bool("loop"),
						Repeat:   int(cmd.Int("repeat")),
						Interval: cmd.Duration("interval"),
					})
				},
			},
		},
		Name:  "Dbwd",
		Usage: "Start an instance of dbwd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
