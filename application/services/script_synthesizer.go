package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"strings"
	"sync"
	"time"
)

var errEmptyScript = errors.New("script has no speakable text")

type scriptSynthesizer struct {
	logger          outbound.LoggerPort
	speechEngine    outbound.SpeechEnginePort
	workerPool      outbound.TaskDispatcher
	segmentTimeout  time.Duration
	maxSegmentChars int
}

func NewScriptSynthesizer(logger outbound.LoggerPort, speechEngine outbound.SpeechEnginePort,
	workerPool outbound.TaskDispatcher, segmentTimeout time.Duration, maxSegmentChars int) inbound.ScriptSynthesizerPort {
	return &scriptSynthesizer{
		logger:          logger,
		speechEngine:    speechEngine,
		workerPool:      workerPool,
		segmentTimeout:  segmentTimeout,
		maxSegmentChars: maxSegmentChars,
	}
}

func (s *scriptSynthesizer) Synthesize(ctx context.Context, script string) ([]byte, error) {
	var segments []domain.VoiceSegment
	if HasSpeakerMarkers(script) {
		segments = SplitScript(script)
	} else if text := strings.TrimSpace(script); text != "" {
		segments = []domain.VoiceSegment{{Speaker: DefaultSpeaker, Text: text}}
	}
	segments = chunkSegments(segments, s.maxSegmentChars)
	if len(segments) == 0 {
		return nil, errEmptyScript
	}

	s.logger.DebugWithFields("Synthesizing script", map[string]interface{}{
		"segments": len(segments),
	})

	audio, err := s.synthesizeAll(ctx, segments)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	for _, part := range audio {
		buffer.Write(part)
	}
	return buffer.Bytes(), nil
}

// synthesizeAll fans segments out on the worker pool and returns their audio
// indexed by ordinal. The first failure cancels the remaining segments. The
// pool must be non-blocking (ants.WithNonblocking) so Submit fails fast when
// every worker is busy.
func (s *scriptSynthesizer) synthesizeAll(ctx context.Context, segments []domain.VoiceSegment) ([][]byte, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	audio := make([][]byte, len(segments))
	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for _, seg := range segments {
		segment := seg
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if newCtx.Err() != nil {
				fail(newCtx.Err())
				return
			}
			content, err := s.synthesizeSegment(newCtx, segment)
			if err != nil {
				fail(err)
				return
			}
			audio[segment.Ordinal] = content
		}
		// A saturated pool never blocks a generation: the segment runs on
		// the caller's goroutine instead.
		if err := s.workerPool.Submit(task); err != nil {
			s.logger.DebugWithFields("Worker pool refused segment, synthesizing inline", map[string]interface{}{
				"ordinal": segment.Ordinal,
				"error":   err.Error(),
			})
			task()
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return audio, nil
}

func (s *scriptSynthesizer) synthesizeSegment(ctx context.Context, segment domain.VoiceSegment) ([]byte, error) {
	content, err := s.generate(ctx, segment, domain.HighQuality)
	if err == nil {
		return content, nil
	}

	s.logger.WarnWithFields("High quality synthesis failed, retrying with standard engine", map[string]interface{}{
		"ordinal": segment.Ordinal,
		"speaker": segment.Speaker,
		"error":   err.Error(),
	})

	content, err = s.generate(ctx, segment, domain.StandardQuality)
	if err != nil {
		s.logger.ErrorWithFields(err, "Segment synthesis failed", map[string]interface{}{
			"ordinal": segment.Ordinal,
			"speaker": segment.Speaker,
		})
		return nil, fmt.Errorf("synthesize segment %d: %w", segment.Ordinal, err)
	}
	return content, nil
}

func (s *scriptSynthesizer) generate(ctx context.Context, segment domain.VoiceSegment, quality domain.AudioQuality) ([]byte, error) {
	newCtx, cancel := context.WithTimeout(ctx, s.segmentTimeout)
	defer cancel()

	return s.speechEngine.Generate(newCtx, outbound.GenerateAudioRequest{
		Text:    segment.Text,
		Speaker: segment.Speaker,
		Quality: quality,
	})
}
