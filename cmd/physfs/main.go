// Command physfs inspects and modifies a virtual filesystem assembled
// from --mount flags or a YAML manifest, mirroring the classic PhysicsFS
// test tool.
//
//	physfs -m /usr/share/game/base -m mods/extra::/mods ls /
//	physfs -c game.yaml cat /config.ini
//	physfs -m data -w saves write /slot1.dat < state.bin
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/kahowell/physfs"
)

func main() {
	app := cli.NewApp()
	app.Name = "physfs"
	app.Usage = "inspect and modify a mounted virtual filesystem"
	app.Version = physfs.GetLinkedVersion().String()
	app.Flags = []cli.Flag{
		cli.StringSliceFlag{
			Name:  "mount, m",
			Usage: "mount `DIR::POINT` onto the search path (POINT defaults to /; repeatable, search order)",
		},
		cli.StringFlag{
			Name:  "write-dir, w",
			Usage: "directory write operations are sandboxed to",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML manifest of mounts and write directory",
		},
	}
	app.Commands = []cli.Command{
		cmdLs(),
		cmdCat(),
		cmdStat(),
		cmdWrite(),
		cmdMkdir(),
		cmdRm(),
		cmdInfo(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "physfs:", err)
		os.Exit(1)
	}
}

// buildVFS assembles the virtual filesystem from the manifest (if any)
// followed by --mount flags, then applies the write directory.
func buildVFS(c *cli.Context) (*physfs.VFS, error) {
	var m manifest
	if path := c.GlobalString("config"); path != "" {
		loaded, err := loadManifest(path)
		if err != nil {
			return nil, err
		}
		m = loaded
	}
	for _, value := range c.GlobalStringSlice("mount") {
		m.Mounts = append(m.Mounts, parseMountFlag(value))
	}
	if w := c.GlobalString("write-dir"); w != "" {
		m.WriteDir = w
	}
	if len(m.Mounts) == 0 && m.WriteDir == "" {
		return nil, errors.New("nothing mounted; use --mount, --write-dir or --config")
	}

	v := physfs.New()
	for _, spec := range m.Mounts {
		if err := v.Mount(spec.Dir, spec.Point, true); err != nil {
			return nil, err
		}
	}
	if m.WriteDir != "" {
		if err := v.SetWriteDir(m.WriteDir); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func argPath(c *cli.Context, fallback string) string {
	if c.NArg() > 0 {
		return c.Args().First()
	}
	return fallback
}

func cmdLs() cli.Command {
	return cli.Command{
		Name:      "ls",
		Usage:     "list a virtual directory",
		ArgsUsage: "[DIR]",
		Action: func(c *cli.Context) error {
			v, err := buildVFS(c)
			if err != nil {
				return err
			}
			dir := argPath(c, "/")
			names, err := v.EnumerateFiles(dir)
			if err != nil {
				return err
			}
			for _, name := range names {
				if v.IsDirectory(dir + "/" + name) {
					name += "/"
				}
				fmt.Fprintln(c.App.Writer, name)
			}
			return nil
		},
	}
}

func cmdCat() cli.Command {
	return cli.Command{
		Name:      "cat",
		Usage:     "write a virtual file to stdout",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			v, err := buildVFS(c)
			if err != nil {
				return err
			}
			f, err := v.OpenRead(argPath(c, ""))
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			_, err = io.Copy(c.App.Writer, f)
			return err
		},
	}
}

func cmdStat() cli.Command {
	return cli.Command{
		Name:      "stat",
		Usage:     "show metadata for a virtual path",
		ArgsUsage: "PATH",
		Action: func(c *cli.Context) error {
			v, err := buildVFS(c)
			if err != nil {
				return err
			}
			name := argPath(c, "")
			st, err := v.Stat(name)
			if err != nil {
				return err
			}
			kind := "file"
			if st.Dir {
				kind = "directory"
			}
			if st.Symlink {
				kind = "symlink"
			}
			fmt.Fprintf(c.App.Writer, "%s: %s, %d bytes, modified %s\n",
				name, kind, st.Size, st.ModTime.Format("2006-01-02 15:04:05"))
			if realDir, err := v.GetRealDir(name); err == nil {
				fmt.Fprintf(c.App.Writer, "served from: %s\n", realDir)
			}
			return nil
		},
	}
}

func cmdWrite() cli.Command {
	return cli.Command{
		Name:      "write",
		Usage:     "write stdin to a file in the write directory",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			v, err := buildVFS(c)
			if err != nil {
				return err
			}
			f, err := v.OpenWrite(argPath(c, ""))
			if err != nil {
				return err
			}
			if _, err := io.Copy(f, os.Stdin); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
}

func cmdMkdir() cli.Command {
	return cli.Command{
		Name:      "mkdir",
		Usage:     "create a directory in the write directory",
		ArgsUsage: "DIR",
		Action: func(c *cli.Context) error {
			v, err := buildVFS(c)
			if err != nil {
				return err
			}
			return v.Mkdir(argPath(c, ""))
		},
	}
}

func cmdRm() cli.Command {
	return cli.Command{
		Name:      "rm",
		Usage:     "delete a file or empty directory from the write directory",
		ArgsUsage: "PATH",
		Action: func(c *cli.Context) error {
			v, err := buildVFS(c)
			if err != nil {
				return err
			}
			return v.Delete(argPath(c, ""))
		},
	}
}

func cmdInfo() cli.Command {
	return cli.Command{
		Name:  "info",
		Usage: "show the search path and write directory",
		Action: func(c *cli.Context) error {
			v, err := buildVFS(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "version: %s\n", physfs.GetLinkedVersion())
			fmt.Fprintln(c.App.Writer, "search path:")
			v.GetSearchPathCallback(func(source string) {
				point, _ := v.GetMountPoint(source)
				fmt.Fprintf(c.App.Writer, "  %s -> %s\n", source, point)
			})
			if w := v.GetWriteDir(); w != "" {
				fmt.Fprintf(c.App.Writer, "write dir: %s\n", w)
			} else {
				fmt.Fprintln(c.App.Writer, "write dir: (disabled)")
			}
			return nil
		},
	}
}
