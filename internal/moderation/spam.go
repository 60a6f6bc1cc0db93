package moderation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Spam rule names, stored with every spam report.
const (
	RuleBannedWord = "banned_word"
	RuleLink       = "link"
	RuleLanguage   = "language"
)

// Short texts give unreliable language guesses.
const minLanguageRunes = 20

var linkPattern = regexp.MustCompile(`(?i)(https?://\S+|\bt\.me/\S+|\btelegram\.me/\S+|(^|\s)@[a-z0-9_]{5,})`)

// SpamOptions configures a SpamFilter.
type SpamOptions struct {
	BannedWords      []string
	BlockLinks       bool
	AllowedLanguages []string // ISO 639-1 codes; empty allows every language
}

// SpamVerdict is the result of checking one message.
type SpamVerdict struct {
	Spam bool
	Rule string
	// Match is the banned word or link that triggered the rule, if any.
	Match string
}

// SpamFilter flags messages that contain banned words, links or text in a
// language outside the allowed list.
type SpamFilter struct {
	matcher    *goahocorasick.Machine
	blockLinks bool
	languages  map[string]struct{}
}

// NewSpamFilter builds the keyword automaton from opts.
func NewSpamFilter(opts SpamOptions) (*SpamFilter, error) {
	f := &SpamFilter{
		blockLinks: opts.BlockLinks,
		languages: lo.SliceToMap(opts.AllowedLanguages, func(code string) (string, struct{}) {
			return strings.ToLower(strings.TrimSpace(code)), struct{}{}
		}),
	}

	patterns := lo.FilterMap(opts.BannedWords, func(word string, _ int) ([]rune, bool) {
		norm := normalizeText(word)
		return norm, len(norm) > 0
	})
	if len(patterns) > 0 {
		m := new(goahocorasick.Machine)
		if err := m.Build(patterns); err != nil {
			return nil, err
		}
		f.matcher = m
	}
	return f, nil
}

// Check runs the rules in order: banned words, links, language.
func (f *SpamFilter) Check(text string) SpamVerdict {
	if f == nil || strings.TrimSpace(text) == "" {
		return SpamVerdict{}
	}

	if f.matcher != nil {
		if terms := f.matcher.MultiPatternSearch(normalizeText(text), true); len(terms) > 0 {
			return SpamVerdict{Spam: true, Rule: RuleBannedWord, Match: strings.TrimSpace(string(terms[0].Word))}
		}
	}

	if f.blockLinks {
		if link := linkPattern.FindString(text); link != "" {
			return SpamVerdict{Spam: true, Rule: RuleLink, Match: strings.TrimSpace(link)}
		}
	}

	if len(f.languages) > 0 && utf8.RuneCountInString(text) >= minLanguageRunes {
		info := whatlanggo.Detect(text)
		if info.IsReliable() {
			code := info.Lang.Iso6391()
			if _, ok := f.languages[code]; !ok {
				return SpamVerdict{Spam: true, Rule: RuleLanguage, Match: code}
			}
		}
	}

	return SpamVerdict{}
}

// edgePunct is trimmed from both ends of a word before leet mapping, so a
// trailing "!" ends the word instead of reading as "i".
const edgePunct = `.,!?;:'"()[]{}«»…`

// normalizeText turns text into lowercase, leet-free words joined and
// surrounded by single spaces. Patterns normalised the same way only match
// whole words: " ass " is not found in " class ".
func normalizeText(s string) []rune {
	words := lo.FilterMap(strings.Fields(s), func(w string, _ int) (string, bool) {
		n := normalizeWord(strings.Trim(w, edgePunct))
		return n, n != ""
	})
	if len(words) == 0 {
		return nil
	}
	return []rune(" " + strings.Join(words, " ") + " ")
}

// normalizeWord lowercases, undoes common leet substitutions and drops
// inner punctuation and symbols so "c-4-$-1-n-0" reads as "casino".
func normalizeWord(w string) string {
	out := make([]rune, 0, len(w))
	for _, r := range w {
		clean := simplifyRune(r)
		if unicode.IsPunct(clean) || unicode.IsSpace(clean) || unicode.IsSymbol(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return string(out)
}

func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
