// Package subcat assigns verb subcategorisation frames by lemma.
package subcat

import (
	"errors"
	"fmt"
	"gdtools.org/lemmatizer/logger"
	"gdtools.org/lemmatizer/utils"
	"strings"
	"unicode"
	"unicode/utf8"
)

const SubcatFile = "subcat.txt"

var DefaultFrames = []string{"TRANS", "INTRANS"}

var ErrOrphanLemma = errors.New("lemma listed before any frame group")

type Lemmatizer interface {
	Lemmatize(surface, xpos string) string
}

type Subcat struct {
	lemmatizer Lemmatizer
	frames     map[string][]string
}

// Load reads a frame file. A line starting with a digit opens a group:
// the number is followed by the frame names shared by every lemma listed
// under it, one per line.
func Load(filePath string, lemmatizer Lemmatizer) (*Subcat, error) {
	subcatLogger := logger.NewLogger("Subcat")

	lines, err := utils.ReadLines(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	stringStore := utils.GlobalStringStore()
	frames := make(map[string][]string)
	var current []string
	groups := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		if unicode.IsDigit(first) {
			current = strings.Fields(line)[1:]
			groups++
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("%s: %w: %s", filePath, ErrOrphanLemma, line)
		}
		frames[line] = current
		stringStore.GetPointer(line)
	}

	subcatLogger.Info().Msgf("Loaded %d lemmas in %d frame groups", len(frames), groups)
	return &Subcat{lemmatizer: lemmatizer, frames: frames}, nil
}

// Frames returns the frames of lemma, or DefaultFrames for unlisted lemmas.
func (s *Subcat) Frames(lemma string) []string {
	if frames, ok := s.frames[lemma]; ok {
		return frames
	}
	return DefaultFrames
}

// FramesFor lemmatizes surface and returns its frames. The * marking a
// retagged word is not part of the tag.
func (s *Subcat) FramesFor(surface, xpos string) []string {
	return s.Frames(s.lemmatizer.Lemmatize(surface, strings.ReplaceAll(xpos, "*", "")))
}
