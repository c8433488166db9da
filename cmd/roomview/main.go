package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/roomview"
	"github.com/bodgit/roomview/photo"
	"github.com/bodgit/roomview/render"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "roomview"
	app.Usage = "Room photo and object image utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	scaleFlag := &cli.IntFlag{
		Name:  "scale",
		Value: 1,
		Usage: "enlarge output by `N`",
	}

	app.Commands = []*cli.Command{
		{
			Name:      "palette",
			Usage:     "Print the palette chosen for a room photo",
			ArgsUsage: "PHOTO",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				store := roomview.NewStore(newLogger(c))

				p, err := store.LoadPhoto(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for i, col := range p.Palette {
					fmt.Printf("%3d %3d %3d %3d\n", photo.FirstIndex+i, col.R, col.G, col.B)
				}

				return nil
			},
		},
		{
			Name:      "render",
			Usage:     "Render a view of a room photo and its objects",
			ArgsUsage: "PHOTO",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:    "object",
					Aliases: []string{"o"},
					Usage:   "place an object image, as `FILE@X,Y`",
				},
				&cli.IntFlag{
					Name:  "x",
					Usage: "left edge of the view",
				},
				&cli.IntFlag{
					Name:  "y",
					Usage: "top edge of the view",
				},
				&cli.IntFlag{
					Name:  "dx",
					Usage: "scroll the view horizontally after drawing",
				},
				&cli.IntFlag{
					Name:  "dy",
					Usage: "scroll the view vertically after drawing",
				},
				&cli.IntFlag{
					Name:  "width",
					Value: render.DefaultWidth,
					Usage: "width of the view",
				},
				&cli.IntFlag{
					Name:  "height",
					Value: render.DefaultHeight,
					Usage: "height of the view",
				},
				scaleFlag,
				&cli.StringFlag{
					Name:  "output",
					Value: "view.png",
					Usage: "write the view to `FILE`",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				store := roomview.NewStore(newLogger(c))

				p, err := store.LoadPhoto(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				room := roomview.NewRoom(c.Args().First(), p)
				for _, s := range c.StringSlice("object") {
					file, x, y, err := roomview.ParsePlacement(s)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					if _, err := store.PlaceFile(room, file, x, y); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				fb, err := render.NewFramebuffer(c.Int("width"), c.Int("height"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				ctx, err := render.NewContext(fb, room)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := fb.Draw(ctx, c.Int("x"), c.Int("y")); err != nil {
					return cli.NewExitError(err, 1)
				}

				if c.Int("dx") != 0 || c.Int("dy") != 0 {
					if err := fb.Scroll(ctx, c.Int("x")+c.Int("dx"), c.Int("y")+c.Int("dy")); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				if err := roomview.WritePNG(c.String("output"), fb.Image(), c.Int("scale")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "encode",
			Usage:     "Encode an image as a room photo or object image",
			ArgsUsage: "IMAGE OUTPUT",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "object",
					Usage: "write an object image rather than a room photo",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := roomview.EncodeFile(c.Args().Get(0), c.Args().Get(1), c.Bool("object")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "convert",
			Usage:     "Write PNG previews of every room photo and object image",
			ArgsUsage: "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "workers",
					EnvVars: []string{"ROOMVIEW_WORKERS"},
					Value:   4,
					Usage:   "number of files to convert at once",
				},
				scaleFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c)
				m := roomview.New(roomview.NewStore(logger), logger)

				if err := m.Convert(c.Args().First(), c.Int("workers"), c.Int("scale")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "compare",
			Usage:     "Compare the room palette against a median cut palette",
			ArgsUsage: "PHOTO",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c)
				m := roomview.New(roomview.NewStore(logger), logger)

				cmp, err := m.Compare(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("pixels:     %d\n", cmp.Pixels)
				fmt.Printf("two-level:  %.2f\n", cmp.TwoLevel)
				fmt.Printf("median cut: %.2f\n", cmp.MedianCut)

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
