// Command ecs-fieldgen writes Field and FieldNames methods for every struct
// in a package marked with an //ecs:component comment, so criteria can read
// component fields by name without reflection.
//
//	//go:generate go run github.com/plus3/entree/cmd/ecs-fieldgen -out components_fields.go
//
// A field's name is taken from its `ecs:"name"` tag, falling back to the Go
// field name. Fields tagged `ecs:"-"` and unexported fields are skipped.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"
)

func main() {
	dir := flag.String("dir", ".", "The package directory to scan.")
	out := flag.String("out", "components_fields.go", "The file to write, relative to -dir.")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	n, err := run(*dir, *out)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", *dir).Msg("field generation failed")
	}
	logger.Info().Int("components", n).Str("file", filepath.Join(*dir, *out)).Msg("generated field tables")
}

func run(dir, out string) (int, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return 0, eris.Wrap(err, "loading package")
	}
	if len(pkgs) != 1 {
		return 0, eris.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return 0, eris.Wrap(pkg.Errors[0], "loading package")
	}

	components, err := collectComponents(pkg.Syntax)
	if err != nil {
		return 0, err
	}

	target := filepath.Join(dir, out)
	src, err := render(target, pkg.Name, components)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(target, src, 0o644); err != nil {
		return 0, eris.Wrapf(err, "writing %s", target)
	}
	return len(components), nil
}
