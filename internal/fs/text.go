package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSampleSize              = 4096
	nonPrintableThresholdPercent = 30
)

// ErrBinary is returned when content does not look like text.
var ErrBinary = errors.New("content is not text")

type bomEncoding int

const (
	bomNone bomEncoding = iota
	bomUTF8
	bomUTF16LE
	bomUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z":    {},
	".bin":   {},
	".bmp":   {},
	".bz2":   {},
	".class": {},
	".dll":   {},
	".dylib": {},
	".exe":   {},
	".gif":   {},
	".gz":    {},
	".ico":   {},
	".jar":   {},
	".jpeg":  {},
	".jpg":   {},
	".mp3":   {},
	".mp4":   {},
	".o":     {},
	".pdf":   {},
	".png":   {},
	".so":    {},
	".tar":   {},
	".tgz":   {},
	".wasm":  {},
	".xz":    {},
	".zip":   {},
}

// ReadTextFile loads path and returns its content decoded to UTF-8.
func ReadTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadText(f, path)
}

// ReadText reads r to the end and decodes it to UTF-8. name is only used to
// reject well-known binary extensions before sniffing.
func ReadText(r io.Reader, name string) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", displayName(name), err)
	}
	if !IsText(name, content) {
		return "", fmt.Errorf("%s: %w", displayName(name), ErrBinary)
	}
	return decode(content), nil
}

// SplitLines splits text on '\n', dropping a '\r' before it. A final newline
// does not start an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// IsText sniffs the head of content for binary data.
func IsText(name string, content []byte) bool {
	if hasBinaryExtension(name) {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	if detectBOM(sample) != bomNone {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func displayName(name string) string {
	if name == "" {
		return "input"
	}
	return name
}

func hasBinaryExtension(name string) bool {
	if name == "" {
		return false
	}
	_, ok := binaryExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D || b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	default:
		return b >= 0x80
	}
}

func detectBOM(sample []byte) bomEncoding {
	switch {
	case bytes.HasPrefix(sample, []byte{0xEF, 0xBB, 0xBF}):
		return bomUTF8
	case bytes.HasPrefix(sample, []byte{0xFF, 0xFE}):
		return bomUTF16LE
	case bytes.HasPrefix(sample, []byte{0xFE, 0xFF}):
		return bomUTF16BE
	default:
		return bomNone
	}
}

func decode(content []byte) string {
	switch detectBOM(content) {
	case bomUTF8:
		return string(content[3:])
	case bomUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case bomUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
