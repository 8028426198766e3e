package googletts

import (
	"brainbox/internal/core/domain/chat"
	e "brainbox/internal/core/domain/errors"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const DEFAULT_VOICE_LANGUAGE = "en-US"

var (
	ErrNothingToSpeak = errors.New("nothing to speak")
	ErrDisabled       = errors.New("text-to-speech is disabled")
)

var voiceLanguages = map[chat.Language]string{
	chat.LanguageEnglish:  "en-US",
	chat.LanguageSpanish:  "es-ES",
	chat.LanguageFrench:   "fr-FR",
	chat.LanguageHindi:    "hi-IN",
	chat.LanguageHinglish: "en-US",
	chat.LanguageAuto:     "en-US",
}

var (
	unspeakable = regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s.,!?'\-]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

type synthesizeFunc func(
	ctx context.Context,
	req *texttospeechpb.SynthesizeSpeechRequest,
) (*texttospeechpb.SynthesizeSpeechResponse, error)

// Synthesizer writes mp3 files rendered by Google Cloud Text-to-Speech into
// dir and returns their URLs under urlPrefix.
type Synthesizer struct {
	synthesize synthesizeFunc
	close      func() error
	dir        string
	urlPrefix  string
}

func New(ctx context.Context, credentialsFile string, dir string, urlPrefix string) (*Synthesizer, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create text-to-speech client: %w", err)
	}

	synthesize := func(
		ctx context.Context,
		req *texttospeechpb.SynthesizeSpeechRequest,
	) (*texttospeechpb.SynthesizeSpeechResponse, error) {
		return client.SynthesizeSpeech(ctx, req)
	}
	return newSynthesizer(synthesize, client.Close, dir, urlPrefix)
}

func newSynthesizer(synthesize synthesizeFunc, closeFn func() error, dir string, urlPrefix string) (*Synthesizer, error) {
	if synthesize == nil {
		panic(e.NewNilArgumentError("synthesize"))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create speech directory: %w", err)
	}
	return &Synthesizer{synthesize: synthesize, close: closeFn, dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *Synthesizer) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func (s *Synthesizer) Synthesize(ctx context.Context, text string, language chat.Language) (string, error) {
	clean := speakableText(text)
	if clean == "" {
		return "", ErrNothingToSpeak
	}

	resp, err := s.synthesize(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: clean},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: voiceLanguage(language),
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return "", fmt.Errorf("synthesize speech: %w", err)
	}

	filename := "tts_" + strings.ReplaceAll(uuid.New().String(), "-", "") + ".mp3"
	if err := os.WriteFile(filepath.Join(s.dir, filename), resp.GetAudioContent(), 0o644); err != nil {
		return "", fmt.Errorf("write speech file: %w", err)
	}
	return path.Join(s.urlPrefix, filename), nil
}

// speakableText keeps letters, digits and basic punctuation so that emoji
// and markup are not read out.
func speakableText(text string) string {
	clean := unspeakable.ReplaceAllString(text, " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(clean, " "))
}

func voiceLanguage(language chat.Language) string {
	if code, ok := voiceLanguages[language]; ok {
		return code
	}
	return DEFAULT_VOICE_LANGUAGE
}

// Disabled stands in for the synthesizer when no Text-to-Speech client could
// be created. Chat replies then come without audio.
type Disabled struct{}

func (Disabled) Synthesize(ctx context.Context, text string, language chat.Language) (string, error) {
	return "", ErrDisabled
}
