package tree

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/adap-names/names/internal/files"
	"github.com/adap-names/names/internal/manifest"
)

// CLI is a type reflected by "github.com/alecthomas/kong" that configures the tree command.
//
//nolint:govet // linter does not like the syntax required by the kong package
type CLI struct {
	Manifest string `arg:"" type:"existingfile" help:"YAML (.yaml, .yml) or JSON (.json) tree manifest"`
	Find     string `help:"Only print the full names of nodes with this base name"`
}

func Run(ctx context.Context, opts *CLI, out io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("ctx must not be nil")
	}
	t, err := manifest.LoadFromFile(opts.Manifest)
	if err != nil {
		return err
	}
	var fullNames []string
	if opts.Find != "" {
		fullNames, err = t.Find(opts.Find)
	} else {
		fullNames, err = t.FullNames()
	}
	if err != nil {
		return err
	}
	log.Debugf("printing %d full name(s) from %#v", len(fullNames), opts.Manifest)
	for _, fullName := range fullNames {
		if fullName == "" {
			fullName = files.FullNameDelimiter
		}
		if _, err := fmt.Fprintln(out, fullName); err != nil {
			return err
		}
	}
	return nil
}
