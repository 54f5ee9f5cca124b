package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	internalErrors "github.com/adap-names/names/internal/errors"
	"github.com/adap-names/names/internal/files"
	"github.com/adap-names/names/internal/util"
)

type Format int

const (
	FormatYAML Format = iota + 1
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromFile derives the format of a manifest from the extension of file.
func FormatFromFile(file string) (Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, internalErrors.NewErrorf(internalErrors.InvalidArgument,
		"cannot derive manifest format from file name %#v (want extension .yaml, .yml or .json)", file)
}

// LoadFromFile loads a tree from a manifest file.
func LoadFromFile(file string) (*Tree, error) {
	format, err := FormatFromFile(file)
	if err != nil {
		return nil, err
	}
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	loader, err := NewLoader(fd, format)
	if err != nil {
		return nil, err
	}
	tree, err := loader.Run()
	if err != nil {
		return nil, fmt.Errorf("error loading %#v: %w", file, err)
	}
	return tree, nil
}

type pendingLink struct {
	vctx  *validateContext
	link  *files.Link
	entry *Entry
}

// Loader is a helper type to split up loading a manifest into multiple functions.
type Loader struct {
	errors   *errorBag
	format   Format
	links    []pendingLink
	manifest *Manifest
	reader   io.Reader
}

// NewLoader encapsulates correct initialization of Loader.
func NewLoader(reader io.Reader, format Format) (*Loader, error) {
	if reader == nil {
		return nil, internalErrors.NewError(internalErrors.InvalidArgument, "reader must not be nil")
	}
	if format != FormatYAML && format != FormatJSON {
		return nil, internalErrors.NewErrorf(internalErrors.InvalidArgument, "unsupported format %v", format)
	}
	return &Loader{
		errors:   &errorBag{},
		format:   format,
		manifest: &Manifest{},
		reader:   reader,
	}, nil
}

func (l *Loader) decode() error {
	if l.format == FormatJSON {
		return util.UnmarshalJSON(l.reader, l.manifest, true)
	}
	decoder := yaml.NewDecoder(l.reader)
	decoder.SetStrict(true)
	if err := decoder.Decode(l.manifest); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Run decodes and validates the manifest and builds the tree it describes. Every problem found is reported in the
// returned error.
func (l *Loader) Run() (*Tree, error) {
	if l.errors == nil {
		return nil, fmt.Errorf("l must be created via NewLoader")
	}
	if err := l.decode(); err != nil {
		return nil, internalErrors.NewErrorf(internalErrors.InvalidArgument, "error decoding %v manifest: %w", l.format,
			err)
	}
	vctx := &validateContext{
		bag: l.errors,
	}
	l.validateEntries(vctx.Child("root"), l.manifest.Root)
	if err := l.errors.err(); err != nil {
		return nil, err
	}
	root := files.NewRoot()
	l.buildEntries(vctx.Child("root"), root, l.manifest.Root)
	l.resolveLinks()
	if err := l.errors.err(); err != nil {
		return nil, err
	}
	log.Debugf("loaded manifest with %d link(s)", len(l.links))
	return &Tree{
		Root: root,
	}, nil
}

func (l *Loader) validateEntries(vctx *validateContext, entries []*Entry) {
	baseNameIndex := map[string]int{}
	for i, entry := range entries {
		vctxEntry := vctx.Child(i)
		if entry == nil {
			vctxEntry.AddError("value must be set (to a non-null value)")
			continue
		}
		n := vctx.ErrorCount()
		l.validateEntry(vctxEntry, entry)
		if n != vctx.ErrorCount() {
			continue
		}
		baseName := entry.baseName()
		if j, ok := baseNameIndex[baseName]; ok {
			vctx.AddErrorf("no two elements must have the same base name but [%d] and [%d] are both named %#v", j, i,
				baseName)
		} else {
			baseNameIndex[baseName] = i
		}
	}
}

func (l *Loader) validateEntry(vctx *validateContext, entry *Entry) {
	x := 0
	for _, s := range []string{entry.Directory, entry.File, entry.Link} {
		if s != "" {
			x++
		}
	}
	if x != 1 {
		vctx.AddError("exactly one of .directory, .file and .link must be set (to a non-empty string)")
		return
	}
	if entry.Directory == "" && len(entry.Children) > 0 {
		vctx.Child("children").AddError("only directories can have children")
	}
	if entry.File == "" && entry.Open {
		vctx.Child("open").AddError("only files can be open")
	}
	if entry.Link == "" && entry.Target != "" {
		vctx.Child("target").AddError("only links can have a target")
	}
	if entry.Link != "" && entry.Target != "" && !strings.HasPrefix(entry.Target, files.FullNameDelimiter) {
		vctx.Child("target").AddErrorf("value must be an absolute full name (start with %#v)", files.FullNameDelimiter)
	}
	if entry.Directory != "" {
		l.validateEntries(vctx.Child("children"), entry.Children)
	}
}

func (l *Loader) buildEntries(vctx *validateContext, parent *files.Directory, entries []*Entry) {
	for i, entry := range entries {
		vctxEntry := vctx.Child(i)
		var err error
		switch {
		case entry.Directory != "":
			var d *files.Directory
			d, err = files.NewDirectory(entry.Directory, parent)
			if err == nil {
				l.buildEntries(vctxEntry.Child("children"), d, entry.Children)
			}
		case entry.File != "":
			var f *files.File
			f, err = files.NewFile(entry.File, parent)
			if err == nil && entry.Open {
				err = f.Open()
			}
		default:
			var link *files.Link
			link, err = files.NewLink(entry.Link, parent, nil)
			if err == nil && entry.Target != "" {
				l.links = append(l.links, pendingLink{
					vctx:  vctxEntry,
					link:  link,
					entry: entry,
				})
			}
		}
		if err != nil {
			vctxEntry.AddErrorf("error creating node: %v", err)
		}
	}
}

func (l *Loader) resolveLinks() {
	for _, p := range l.links {
		root := p.link.Parent()
		for !root.IsRoot() {
			root = root.Parent()
		}
		target, err := files.LookupString(root, p.entry.Target)
		if err != nil {
			p.vctx.Child("target").AddErrorf("value (%#v) does not name an existing node: %v", p.entry.Target, err)
			continue
		}
		if err := p.link.SetTarget(target); err != nil {
			p.vctx.Child("target").AddErrorf("%v", err)
			continue
		}
		log.Debugf("resolved link %s to %s", p.link.ID(), p.entry.Target)
	}
}
