package services

import (
	"github.com/Tejasai37/papercast/domain"
	"regexp"
	"strings"
)

const DefaultSpeaker = domain.HostSpeaker

var (
	speakerMarkerRegexp = regexp.MustCompile(`(?i)\[(HOST|EXPERT)\]:?`)
	sentenceEndRegexp   = regexp.MustCompile(`[.!?]+["')\]]*\s+`)
)

// SplitScript cuts a speaker-tagged script into ordered voice segments.
// Text before the first marker belongs to the default speaker.
func SplitScript(script string) []domain.VoiceSegment {
	segments := make([]domain.VoiceSegment, 0)
	current := DefaultSpeaker

	appendText := func(text string) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		segments = append(segments, domain.VoiceSegment{
			Speaker: current,
			Text:    text,
			Ordinal: len(segments),
		})
	}

	cursor := 0
	for _, match := range speakerMarkerRegexp.FindAllStringSubmatchIndex(script, -1) {
		appendText(script[cursor:match[0]])
		current = speakerFromMarker(script[match[2]:match[3]])
		cursor = match[1]
	}
	appendText(script[cursor:])

	return segments
}

func HasSpeakerMarkers(script string) bool {
	return speakerMarkerRegexp.MatchString(script)
}

func speakerFromMarker(name string) domain.Speaker {
	if strings.EqualFold(name, "EXPERT") {
		return domain.ExpertSpeaker
	}
	return domain.HostSpeaker
}

// chunkSegments splits segments longer than maxChars at sentence boundaries,
// falling back to word boundaries for run-on sentences. Order is kept.
func chunkSegments(segments []domain.VoiceSegment, maxChars int) []domain.VoiceSegment {
	if maxChars <= 0 {
		return segments
	}
	out := make([]domain.VoiceSegment, 0, len(segments))
	for _, segment := range segments {
		for _, chunk := range chunkText(segment.Text, maxChars) {
			out = append(out, domain.VoiceSegment{
				Speaker: segment.Speaker,
				Text:    chunk,
				Ordinal: len(out),
			})
		}
	}
	return out
}

func chunkText(text string, maxChars int) []string {
	if len(text) <= maxChars {
		return []string{text}
	}

	chunks := make([]string, 0)
	var builder strings.Builder
	flush := func() {
		if chunk := strings.TrimSpace(builder.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}
		builder.Reset()
	}

	for _, sentence := range splitSentences(text) {
		if builder.Len()+len(sentence) > maxChars {
			flush()
		}
		if len(sentence) > maxChars {
			for _, word := range strings.Fields(sentence) {
				if builder.Len()+len(word)+1 > maxChars {
					flush()
				}
				builder.WriteString(word)
				builder.WriteString(" ")
			}
			continue
		}
		builder.WriteString(sentence)
	}
	flush()

	return chunks
}

func splitSentences(text string) []string {
	sentences := make([]string, 0)
	cursor := 0
	for _, loc := range sentenceEndRegexp.FindAllStringIndex(text, -1) {
		sentences = append(sentences, text[cursor:loc[1]])
		cursor = loc[1]
	}
	if cursor < len(text) {
		sentences = append(sentences, text[cursor:])
	}
	return sentences
}
