package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/alessio/shellescape"
	log "github.com/sirupsen/logrus"

	"github.com/adap-names/names/internal/names"
)

// CLI is a type reflected by "github.com/alecthomas/kong" that configures the convert command.
//
//nolint:govet // linter does not like the syntax required by the kong package
type CLI struct {
	Name      string `arg:"" help:"Name in string form, with components separated by the delimiter and escaped with a backslash"`
	Delimiter string `default:"." help:"Delimiter of the name"`
	Join      string `help:"Print the unescaped components joined with this delimiter"`
	Data      bool   `help:"Print the data string, i.e. the components escaped for and joined with the default delimiter"`
	Split     bool   `help:"Print every escaped component on its own line, quoted for a POSIX shell"`
}

func Run(ctx context.Context, opts *CLI, out io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("ctx must not be nil")
	}
	modes := 0
	if opts.Join != "" {
		modes++
	}
	if opts.Data {
		modes++
	}
	if opts.Split {
		modes++
	}
	if modes > 1 {
		return fmt.Errorf("at most one of the join, data and split flags may be set")
	}
	n, err := names.NewStringName(opts.Name, names.WithDelimiter(opts.Delimiter))
	if err != nil {
		return fmt.Errorf("error parsing name %#v: %w", opts.Name, err)
	}
	log.Debugf("parsed name %s with %d component(s) and hash code %d", n, n.NoComponents(), n.HashCode())
	switch {
	case opts.Join != "":
		s, err := n.AsStringWith(opts.Join)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	case opts.Data:
		_, err = fmt.Fprintln(out, n.AsDataString())
		return err
	case opts.Split:
		for i := 0; i < n.NoComponents(); i++ {
			c, err := n.Component(i)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, shellescape.Quote(c)); err != nil {
				return err
			}
		}
		return nil
	}
	_, err = fmt.Fprintln(out, n.AsString())
	return err
}
