// Package posts finds the numbered post files of a site and picks the next
// free post number.
//
// Post files are named "<number>-<slug><ext>", for example
// "0042-lazy-sequences.md". Files without a numeric prefix are ignored.
package posts

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"unicode"

	"github.com/DavidRaab/website-sub000/errors"
	"github.com/DavidRaab/website-sub000/logger"
	"github.com/DavidRaab/website-sub000/option"
	"github.com/DavidRaab/website-sub000/seq"
)

// listing is the unfold state of Entries. The directory is read on the
// first step of each enumeration.
type listing struct {
	names  []string
	pos    int
	loaded bool
}

// Entries returns the names of the regular files in dir, in lexical order.
// The directory is checked once up front and then re-read by every
// enumeration, so the sequence reflects the directory at the time it is
// traversed. A directory that disappears between traversals yields nothing.
func Entries(fsys fs.FS, dir string) (seq.Seq[string], error) {
	if _, err := fs.ReadDir(fsys, dir); err != nil {
		return seq.Empty[string](), readError(dir, err)
	}
	return seq.Unfold(listing{}, func(l listing) (string, listing, bool) {
		if !l.loaded {
			l = listing{names: fileNames(fsys, dir), loaded: true}
		}
		if l.pos >= len(l.names) {
			return "", l, false
		}
		return l.names[l.pos], listing{names: l.names, pos: l.pos + 1, loaded: true}, true
	}), nil
}

func fileNames(fsys fs.FS, dir string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		logger.WithComponent("posts").Debug("posts directory unreadable, listing is empty",
			logger.ErrorFields("read directory", err), logger.Fields(logger.FieldDir, dir))
		return nil
	}
	dirEntries := seq.FromSlice(entries)
	files := seq.Filter(dirEntries, func(e fs.DirEntry) bool { return e.Type().IsRegular() })
	return seq.ToSlice(seq.Map(files, fs.DirEntry.Name))
}

func readError(dir string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.NotFound("posts directory", dir).WithCause(err)
	}
	return errors.IO("read directory", dir, err)
}

// Number parses the post number of a file name. It returns None when the
// name does not end in ext or does not start with digits followed by '-'
// or the extension.
func Number(name, ext string) option.Option[int] {
	stem, ok := strings.CutSuffix(name, ext)
	if !ok || stem == "" {
		return option.None[int]()
	}
	digits := stem
	if i := strings.IndexByte(stem, '-'); i >= 0 {
		digits = stem[:i]
	}
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return option.None[int]()
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return option.None[int]()
	}
	return option.Some(n)
}

// Numbers maps file names to post numbers, skipping names that are not
// posts.
func Numbers(names seq.Seq[string], ext string) seq.Seq[int] {
	return seq.Choose(names, func(name string) option.Option[int] { return Number(name, ext) })
}

// Highest returns the largest post number, or None when there are no posts.
func Highest(numbers seq.Seq[int]) option.Option[int] {
	return seq.Max(numbers)
}

// Next returns the number following the highest post in dir, or 1 when dir
// contains no posts.
func Next(fsys fs.FS, dir, ext string) (int, error) {
	names, err := Entries(fsys, dir)
	if err != nil {
		return 0, err
	}
	return Highest(Numbers(names, ext)).GetOrElse(0) + 1, nil
}

// FileName formats a post file name with n zero-padded to width.
func FileName(n, width int, slug, ext string) string {
	if slug == "" {
		return fmt.Sprintf("%0*d%s", width, n, ext)
	}
	return fmt.Sprintf("%0*d-%s%s", width, n, slug, ext)
}

// SlugPattern matches the slugs produced by Slug.
const SlugPattern = `^[a-z0-9]+(-[a-z0-9]+)*$`

// Slug turns a title into a lower-case, dash separated slug. Runs of
// anything other than ASCII letters and digits collapse into one dash.
func Slug(title string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
