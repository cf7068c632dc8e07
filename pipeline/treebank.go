package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"gdtools.org/lemmatizer/conllu"
	"gdtools.org/lemmatizer/lemmatizer"
	"gdtools.org/lemmatizer/logger"
	"gdtools.org/lemmatizer/metrics"
	"gdtools.org/lemmatizer/subcat"
	"gdtools.org/lemmatizer/types"
	"github.com/rs/zerolog"
	"path"
	"sort"
	"strings"
	"time"
)

var (
	ErrNoLemmatizer        = errors.New("treebank pipeline needs a lemmatizer")
	ErrConfigurationFailed = errors.New("configuration failed")
)

type TreebankParams struct {
	ResourceFolder string                 `json:"resource_folder"`
	SubcatFile     string                 `json:"subcat_file"`
	Configurations []types.Configuration  `json:"configurations"`
	Lemmatizer     *lemmatizer.Lemmatizer `json:"-"`
}

func GetTreebankParams(resourcesPath string, lem *lemmatizer.Lemmatizer, cfgs []types.Configuration) TreebankParams {
	return TreebankParams{
		ResourceFolder: resourcesPath,
		SubcatFile:     path.Join(resourcesPath, "subcat", subcat.SubcatFile),
		Configurations: cfgs,
		Lemmatizer:     lem,
	}
}

func Treebank(params TreebankParams) (Pipeline, error) {
	tbLogger := logger.NewLogger("Treebank pipeline")
	errLogger := tbLogger.With().Caller().Logger()
	tbLogger.Info().
		Interface("params", params).
		Msg("Starting treebank pipeline (see parameters in 'params' field)")

	if params.Lemmatizer == nil {
		errLogger.Err(ErrNoLemmatizer).Msg("Failed to create treebank pipeline")
		return nil, ErrNoLemmatizer
	}

	sub, err := subcat.Load(params.SubcatFile, params.Lemmatizer)
	if err != nil {
		errLogger.Err(err).
			Str("subcat_file", params.SubcatFile).
			Msg("Failed to load subcategorisation frames")
		return nil, err
	}

	normaliser := NewNormaliser()
	featurizer := NewFeaturizer()
	subcategoriser := NewSubcategoriser(sub)
	lemmatizers := map[bool]Stage{
		false: NewLemmatizer(params.Lemmatizer, false),
		true:  NewLemmatizer(params.Lemmatizer, true),
	}
	splitter := NewSentenceChannelSplitter(len(params.Configurations))
	treebankResponse := NewTreebankResult()

	return func(request Request) <-chan string {
		responseChan := make(chan string)
		pplnLog := tbLogger.With().Str("tid", request.Tid).Logger()
		pplnLog.Info().Msg("Started treebank pipeline")

		go func() {
			start := time.Now()
			defer func() {
				metrics.PipelineDuration.WithLabelValues(types.TreebankPipeline).Observe(time.Since(start).Seconds())
			}()

			response := make(map[string]interface{})
			sentences, err := conllu.ParseString(request.Text)
			if err != nil {
				pplnLog.Err(err).Msg("Failed to parse CoNLL-U input")
				for _, cfg := range params.Configurations {
					res := NewErrorResult(request, cfg.Name, err)
					response[res.ConfigName] = res.Data
				}
				responseChan <- marshalResponse(response, pplnLog)
				return
			}

			in := make(chan types.Sentence)
			split := splitter(in)

			resultChannel := make(chan Result)
			defer close(resultChannel)

			for i, cfg := range params.Configurations {
				var sents <-chan types.Sentence = split[i]
				if cfg.CheckFeature(types.GOCFeature) {
					sents = normaliser(sents)
				}
				if cfg.CheckFeature(types.LemmaFeature) {
					sents = lemmatizers[cfg.Params.OverwriteLemma](sents)
				}
				if cfg.CheckFeature(types.FeatsFeature) {
					sents = featurizer(sents)
				}
				if cfg.CheckFeature(types.SubcatFeature) {
					sents = subcategoriser(sents)
				}
				connect(treebankResponse(sents, cfg.Name, request), resultChannel)
			}

			go func() {
				defer close(in)
				for _, sent := range sentences {
					in <- sent
				}
			}()

			for i := 0; i < len(params.Configurations); i++ {
				res := <-resultChannel
				pplnLog.Info().
					Str("config_name", res.ConfigName).
					Msg("Finished pipeline for configuration")
				response[res.ConfigName] = res.Data
			}

			pplnLog.Info().Int("sentences", len(sentences)).Msg("Finished treebank pipeline")
			responseChan <- marshalResponse(response, pplnLog)
		}()

		return responseChan
	}, nil
}

// ResponseError reports the configurations of a pipeline response that
// hold an error instead of a result.
func ResponseError(response string) error {
	var results map[string]struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(response), &results); err != nil {
		return fmt.Errorf("failed to decode pipeline response: %w", err)
	}
	var failed []string
	for name, res := range results {
		if res.Error != "" {
			failed = append(failed, fmt.Sprintf("%s: %s", name, res.Error))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	sort.Strings(failed)
	return fmt.Errorf("%w: %s", ErrConfigurationFailed, strings.Join(failed, "; "))
}

func marshalResponse(response map[string]interface{}, pplnLog zerolog.Logger) string {
	buf, err := json.Marshal(response)
	if err != nil {
		pplnLog.Err(err).Msg("Failed to marshall response")
	}
	return string(buf)
}

func connect(from <-chan Result, to chan<- Result) {
	go func() {
		for v := range from {
			to <- v
		}
	}()
}
