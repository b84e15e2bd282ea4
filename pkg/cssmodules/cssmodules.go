// Package cssmodules derives the unique class names given to scoped
// ("module") style sheets.
//
// An identifier has the shape <name>_<class>__<hash>, where <name> is the
// style sheet's file name (its parent folder for index.module.* files) and
// <hash> is the first five base-64 digits of the MD5 digest of the style
// sheet path, relative to the project root, followed by the class name. The
// digest is read as a little-endian integer and written most significant
// digit first over the alphabet 0-9a-zA-Z-_, the encoding webpack's
// loader-utils uses, so identifiers match the ones a webpack build emits.
// The same path and class always produce the same identifier.
package cssmodules

import (
	"crypto/md5"
	"math/big"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// HashLength is the number of digest characters kept in an identifier
const HashLength = 5

// digestAlphabet holds the base-64 digits in ascending value
const digestAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

var (
	indexModulePattern = regexp.MustCompile(`index\.module\.(css|scss|sass)$`)
	unsafeChars        = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// LocalIdent returns the scoped identifier for className declared in the
// style sheet at resourcePath. root is the project root; resourcePath may be
// absolute or relative to it.
func LocalIdent(root, resourcePath, className string) string {
	rel := relativeSlashPath(root, resourcePath)

	var prefix string
	if indexModulePattern.MatchString(rel) {
		prefix = path.Base(path.Dir(rel))
	} else {
		base := path.Base(rel)
		prefix = strings.TrimSuffix(base, path.Ext(base))
	}

	ident := prefix + "_" + className + "__" + Hash(rel, className)
	ident = strings.Replace(ident, ".module_", "_", 1)
	return unsafeChars.ReplaceAllString(ident, "-")
}

// Hash returns the short digest for a relative style sheet path and class
func Hash(relPath, className string) string {
	sum := md5.Sum([]byte(relPath + className))
	digits := encodeBase(sum[:])
	if len(digits) > HashLength {
		digits = digits[:HashLength]
	}
	return digits
}

// encodeBase writes buf, read as a little-endian integer, in base 64 with the
// most significant digit first. Leading zero digits are not written.
func encodeBase(buf []byte) string {
	be := make([]byte, len(buf))
	for i, b := range buf {
		be[len(buf)-1-i] = b
	}
	n := new(big.Int).SetBytes(be)
	base := big.NewInt(int64(len(digestAlphabet)))
	digit := new(big.Int)

	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, base, digit)
		out = append(out, digestAlphabet[digit.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func relativeSlashPath(root, resourcePath string) string {
	if root != "" && filepath.IsAbs(resourcePath) {
		if rel, err := filepath.Rel(root, resourcePath); err == nil {
			resourcePath = rel
		}
	}
	return filepath.ToSlash(resourcePath)
}
