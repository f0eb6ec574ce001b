package main

import (
	"os"

	"github.com/mousany/listfiles/lister"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "listfiles",
		Version: "v0.1.0",
		Usage:   "Write the relative path of every file under a directory to a text file",

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enable debug mode",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   lister.DefaultOutput,
				Usage:   "write the paths to `FILE`",
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "list files under `DIR` instead of the working directory",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("debug") {
				logrus.SetLevel(logrus.DebugLevel)
			}

			root := c.String("root")
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = wd
			}

			l, err := lister.New(root, c.String("output"))
			if err != nil {
				return err
			}
			_, err = l.Run()
			return err
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Errorf("Fail to list files: %s", err)
		os.Exit(1)
	}
}
