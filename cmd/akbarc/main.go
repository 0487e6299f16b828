package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Itshossein128/akbarLangCompiler/pkg/compiler"
	"github.com/Itshossein128/akbarLangCompiler/pkg/utils"

	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "akbarc",
		Usage:     "compile an AkbarLang source file to C++",
		ArgsUsage: "<source-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output C++ file path (default: the source path with its extension replaced by .cpp)",
			},
			&cli.BoolFlag{
				Name:  "emit-ir",
				Usage: "print the optimized IR instead of writing C++",
			},
			&cli.BoolFlag{
				Name:  "run",
				Usage: "build the generated C++ with the host compiler and run it",
			},
			&cli.StringFlag{
				Name:  "cxx",
				Value: "g++",
				Usage: "host C++ compiler invoked with --run",
			},
		},
		Action: runCompile,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCompile(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("akbarc: missing source file", 1)
	}

	fullPath, defaultOutPath, err := utils.GetPathInfo(c.Args().Get(0))
	if err != nil {
		return cli.Exit(fmt.Sprintf("akbarc: %v", err), 1)
	}

	src, err := os.ReadFile(fullPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("akbarc: %v", err), 1)
	}

	result, err := compiler.Compile(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.Exit("", 1)
	}

	if c.Bool("emit-ir") {
		for _, in := range result.IR {
			fmt.Println(in)
		}
		return nil
	}

	outPath := c.String("out")
	if outPath == "" {
		outPath = defaultOutPath
	}
	if err := os.WriteFile(outPath, []byte(result.CXX), 0o644); err != nil {
		return cli.Exit(fmt.Sprintf("akbarc: %v", err), 1)
	}

	if !c.Bool("run") {
		return nil
	}
	return buildAndRun(c.String("cxx"), outPath)
}

// buildAndRun shells out to the host C++ compiler, then runs the
// resulting binary with stdio inherited from the driver process. A failed
// build makes the driver exit with status 1; a non-zero exit of the built
// program becomes the driver's own exit status.
func buildAndRun(cxx, cxxPath string) error {
	binPath := strings.TrimSuffix(cxxPath, filepath.Ext(cxxPath))
	if runtime.GOOS == "windows" {
		binPath += ".exe"
	}

	build := exec.Command(cxx, cxxPath, "-o", binPath)
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		return cli.Exit(fmt.Sprintf("akbarc: host compiler failed: %v", err), 1)
	}

	run := exec.Command(binPath)
	run.Stdin = os.Stdin
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	if err := run.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return cli.Exit("", exitErr.ExitCode())
		}
		return cli.Exit(fmt.Sprintf("akbarc: %v", err), 1)
	}
	return nil
}
